package spatial

import (
	"fmt"
	"io"

	"github.com/Apostolique/Apos.Spatial/dtree"
)

// IntervalTree is a dynamic bounding-volume hierarchy over 1-D intervals,
// storing one payload of type P per leaf.
type IntervalTree[P any] struct {
	inner *dtree.Tree[Interval, float64, P]
}

// NewIntervalTree builds an empty IntervalTree from cfg.
func NewIntervalTree[P any](cfg IntervalConfig) (*IntervalTree[P], error) {
	inner, err := dtree.New[Interval, float64, P](cfg.toDtree())
	if err != nil {
		return nil, err
	}
	tracer().P("op", "new").Debugf("spatial: IntervalTree created")
	return &IntervalTree[P]{inner: inner}, nil
}

// Add inserts payload at key and returns its handle.
func (t *IntervalTree[P]) Add(key Interval, payload P) dtree.Handle {
	return t.inner.Add(key, payload)
}

// Remove detaches h's leaf and releases its slot. NilHandle is a no-op.
func (t *IntervalTree[P]) Remove(h dtree.Handle) {
	t.inner.Remove(h)
}

// Clear drops every entry and resets the arena.
func (t *IntervalTree[P]) Clear(initialCapacity int) {
	t.inner.Clear(initialCapacity)
}

// Update replaces h's true key with newKey, restructuring only if newKey no
// longer fits within h's fattened key.
func (t *IntervalTree[P]) Update(h dtree.Handle, newKey Interval) bool {
	return t.inner.Update(h, newKey)
}

// Move is Update specialized for a leaf that moved by offset: the fattened
// key is extended ahead of travel rather than symmetrically.
func (t *IntervalTree[P]) Move(h dtree.Handle, newKey Interval, offset float64) bool {
	return t.inner.Move(h, newKey, offset)
}

// GetKey returns the key currently stored for h: the fattened key, or the
// key last passed to an Update that did not restructure.
func (t *IntervalTree[P]) GetKey(h dtree.Handle) Interval {
	return t.inner.GetKey(h)
}

// GetItem returns the payload stored for h.
func (t *IntervalTree[P]) GetItem(h dtree.Handle) P {
	return t.inner.GetItem(h)
}

// Query returns an iterator over the payloads of every leaf overlapping key.
func (t *IntervalTree[P]) Query(key Interval) *dtree.ItemIterator[Interval, float64, P] {
	return t.inner.Query(key)
}

// QueryAll returns an iterator over every leaf's payload, unfiltered.
func (t *IntervalTree[P]) QueryAll() *dtree.ItemIterator[Interval, float64, P] {
	return t.inner.QueryAll()
}

// QuerySlice buffers Query(key) into a slice in one call.
func (t *IntervalTree[P]) QuerySlice(key Interval) ([]P, error) {
	return t.inner.QuerySlice(key)
}

// QueryAllSlice buffers QueryAll() into a slice in one call.
func (t *IntervalTree[P]) QueryAllSlice() ([]P, error) {
	return t.inner.QueryAllSlice()
}

// DebugNodes returns an iterator over the stored keys of every node (branch
// or leaf) overlapping key, for introspection/visualization.
func (t *IntervalTree[P]) DebugNodes(key Interval) *dtree.KeyIterator[Interval, float64, P] {
	return t.inner.DebugNodes(key)
}

// DebugAllNodes returns an iterator over the stored keys of every node in
// the arena, for introspection/visualization.
func (t *IntervalTree[P]) DebugAllNodes() *dtree.KeyIterator[Interval, float64, P] {
	return t.inner.DebugAllNodes()
}

// Count returns the number of live arena slots, branches and leaves alike.
func (t *IntervalTree[P]) Count() int { return t.inner.Count() }

// ItemCount returns the number of leaves currently stored.
func (t *IntervalTree[P]) ItemCount() int { return t.inner.ItemCount() }

// Bounds returns the root's key and true, or the zero Interval and false if
// the tree is empty.
func (t *IntervalTree[P]) Bounds() (Interval, bool) { return t.inner.Bounds() }

// WriteDOT writes a Graphviz DOT rendering of the live arena. For debugging.
func (t *IntervalTree[P]) WriteDOT(w io.Writer) {
	t.inner.WriteDOT(w, func(i Interval) string {
		return fmt.Sprintf("[%.1f, %.1f]", i.Origin, i.Origin+i.Length)
	})
}
