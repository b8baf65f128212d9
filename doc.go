/*
Package spatial provides dynamic bounding-volume hierarchies for broad-phase
spatial queries: AABBTree for 2-D axis-aligned rectangles and IntervalTree
for 1-D intervals. Both are thin, concretely-typed wrappers over the generic
arena-backed engine in package dtree.

Stored keys are fattened beyond an item's true bounds so that small moves
don't force a restructure of the tree on every call; Move additionally
extends the fattened key in the direction of travel.

Typical usage:

	tree, _ := spatial.NewAABBTree[MyEntity](spatial.AABBConfig{})
	h := tree.Add(spatial.Rect{X: 0, Y: 0, W: 10, H: 10}, myEntity)
	hits, _ := tree.QuerySlice(spatial.Rect{X: 5, Y: 5, W: 1, H: 1})
*/
package spatial

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spatial'.
func tracer() tracing.Trace {
	return tracing.Select("spatial")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
