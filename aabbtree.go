package spatial

import (
	"fmt"
	"io"

	"github.com/Apostolique/Apos.Spatial/dtree"
)

// AABBTree is a dynamic bounding-volume hierarchy over 2-D axis-aligned
// rectangles, storing one payload of type P per leaf.
type AABBTree[P any] struct {
	inner *dtree.Tree[Rect, Vector2, P]
}

// NewAABBTree builds an empty AABBTree from cfg.
func NewAABBTree[P any](cfg AABBConfig) (*AABBTree[P], error) {
	inner, err := dtree.New[Rect, Vector2, P](cfg.toDtree())
	if err != nil {
		return nil, err
	}
	tracer().P("op", "new").Debugf("spatial: AABBTree created")
	return &AABBTree[P]{inner: inner}, nil
}

// Add inserts payload at key and returns its handle.
func (t *AABBTree[P]) Add(key Rect, payload P) dtree.Handle {
	return t.inner.Add(key, payload)
}

// Remove detaches h's leaf and releases its slot. NilHandle is a no-op.
func (t *AABBTree[P]) Remove(h dtree.Handle) {
	t.inner.Remove(h)
}

// Clear drops every entry and resets the arena.
func (t *AABBTree[P]) Clear(initialCapacity int) {
	t.inner.Clear(initialCapacity)
}

// Update replaces h's true key with newKey, restructuring only if newKey no
// longer fits within h's fattened key.
func (t *AABBTree[P]) Update(h dtree.Handle, newKey Rect) bool {
	return t.inner.Update(h, newKey)
}

// Move is Update specialized for a leaf that moved by offset: the fattened
// key is extended ahead of travel rather than symmetrically.
func (t *AABBTree[P]) Move(h dtree.Handle, newKey Rect, offset Vector2) bool {
	return t.inner.Move(h, newKey, offset)
}

// GetKey returns the key currently stored for h: the fattened key, or the
// key last passed to an Update that did not restructure.
func (t *AABBTree[P]) GetKey(h dtree.Handle) Rect {
	return t.inner.GetKey(h)
}

// GetItem returns the payload stored for h.
func (t *AABBTree[P]) GetItem(h dtree.Handle) P {
	return t.inner.GetItem(h)
}

// Query returns an iterator over the payloads of every leaf overlapping key.
func (t *AABBTree[P]) Query(key Rect) *dtree.ItemIterator[Rect, Vector2, P] {
	return t.inner.Query(key)
}

// QueryAll returns an iterator over every leaf's payload, unfiltered.
func (t *AABBTree[P]) QueryAll() *dtree.ItemIterator[Rect, Vector2, P] {
	return t.inner.QueryAll()
}

// QuerySlice buffers Query(key) into a slice in one call.
func (t *AABBTree[P]) QuerySlice(key Rect) ([]P, error) {
	return t.inner.QuerySlice(key)
}

// QueryAllSlice buffers QueryAll() into a slice in one call.
func (t *AABBTree[P]) QueryAllSlice() ([]P, error) {
	return t.inner.QueryAllSlice()
}

// DebugNodes returns an iterator over the stored keys of every node (branch
// or leaf) overlapping key, for introspection/visualization.
func (t *AABBTree[P]) DebugNodes(key Rect) *dtree.KeyIterator[Rect, Vector2, P] {
	return t.inner.DebugNodes(key)
}

// DebugAllNodes returns an iterator over the stored keys of every node in
// the arena, for introspection/visualization.
func (t *AABBTree[P]) DebugAllNodes() *dtree.KeyIterator[Rect, Vector2, P] {
	return t.inner.DebugAllNodes()
}

// Count returns the number of live arena slots, branches and leaves alike.
func (t *AABBTree[P]) Count() int { return t.inner.Count() }

// ItemCount returns the number of leaves currently stored.
func (t *AABBTree[P]) ItemCount() int { return t.inner.ItemCount() }

// Bounds returns the root's key and true, or the zero Rect and false if the
// tree is empty.
func (t *AABBTree[P]) Bounds() (Rect, bool) { return t.inner.Bounds() }

// WriteDOT writes a Graphviz DOT rendering of the live arena. For debugging.
func (t *AABBTree[P]) WriteDOT(w io.Writer) {
	t.inner.WriteDOT(w, func(r Rect) string {
		return fmt.Sprintf("(%.1f,%.1f) %.1fx%.1f", r.X, r.Y, r.W, r.H)
	})
}
