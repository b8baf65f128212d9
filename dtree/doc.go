// Package dtree implements a generic arena-backed dynamic bounding-volume
// hierarchy: an in-place AVL-balanced binary tree over an index arena, with
// optimal-sibling insertion search and fattened keys to absorb motion without
// restructuring the tree on every small move.
//
// The tree is parameterized over a key type K (the bounding volume, e.g. a
// rectangle or an interval), a motion-vector type V used by Move, and a
// payload type P. Concrete key spaces implement Keys[K, V]; callers never see
// arena indices directly, only opaque Handle values.
package dtree

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("dtree")
}

func assert(cond bool, msg string) {
	if !cond {
		panic("dtree: " + msg)
	}
}
