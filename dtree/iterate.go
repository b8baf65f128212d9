package dtree

// stackInitialCapacity seeds the DFS stack used by every iterator. The stack
// grows past this on overflow rather than capping traversal depth/width.
const stackInitialCapacity = 256

// nodeWalker is the shared depth-first traversal behind all four iterator
// shapes. useFilter selects query-by-key (true) vs. visit-everything (false)
// pruning; leavesOnly selects whether branch nodes are emitted or only
// walked through.
type nodeWalker[K any, V any, P any] struct {
	tree            *Tree[K, V, P]
	snapshotVersion uint64
	stack           []int32

	useFilter bool
	filterKey K
	leavesOnly bool

	curIndex int32
	haveCur  bool
	exhausted bool
}

func newWalker[K any, V any, P any](t *Tree[K, V, P], filterKey K, useFilter, leavesOnly bool) *nodeWalker[K, V, P] {
	w := &nodeWalker[K, V, P]{
		tree:            t,
		snapshotVersion: t.version,
		useFilter:       useFilter,
		filterKey:       filterKey,
		leavesOnly:      leavesOnly,
		curIndex:        nilIndex,
	}
	if t.root != nilIndex {
		w.stack = make([]int32, 0, stackInitialCapacity)
		w.stack = append(w.stack, t.root)
	}
	return w
}

// advance moves to the next node satisfying the walker's emission rule. It
// returns (true, nil) when curIndex was updated, (false, nil) when the
// traversal is exhausted, and (false, ErrConcurrentModification) if the tree
// changed since the walker was constructed.
func (w *nodeWalker[K, V, P]) advance() (bool, error) {
	if w.exhausted {
		return false, nil
	}
	if w.tree.version != w.snapshotVersion {
		w.exhausted = true
		w.haveCur = false
		return false, ErrConcurrentModification
	}
	for len(w.stack) > 0 {
		i := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if w.useFilter && !w.tree.cfg.Keys.Overlaps(w.filterKey, w.tree.keys[i]) {
			continue
		}
		isLeaf := w.tree.isLeaf(i)
		if !isLeaf {
			w.stack = append(w.stack, w.tree.nodes[i].childA, w.tree.nodes[i].childB)
		}
		if isLeaf || !w.leavesOnly {
			w.curIndex = i
			w.haveCur = true
			return true, nil
		}
	}
	w.exhausted = true
	w.haveCur = false
	return false, nil
}

// ItemIterator yields the payloads of leaves matching a query.
type ItemIterator[K any, V any, P any] struct {
	w *nodeWalker[K, V, P]
}

// Next advances the iterator. It must be called before the first Current.
func (it *ItemIterator[K, V, P]) Next() (bool, error) {
	return it.w.advance()
}

// Current returns the payload at the current position.
func (it *ItemIterator[K, V, P]) Current() (P, error) {
	if !it.w.haveCur {
		var zero P
		return zero, ErrInvalidIteratorState
	}
	return it.w.tree.payloads[it.w.curIndex], nil
}

// CurrentHandle returns the handle at the current position.
func (it *ItemIterator[K, V, P]) CurrentHandle() (Handle, error) {
	if !it.w.haveCur {
		return NilHandle, ErrInvalidIteratorState
	}
	return Handle(it.w.curIndex), nil
}

// KeyIterator yields the stored keys of nodes (branch or leaf) matching a
// query, used by the debug/introspection walks.
type KeyIterator[K any, V any, P any] struct {
	w *nodeWalker[K, V, P]
}

func (it *KeyIterator[K, V, P]) Next() (bool, error) {
	return it.w.advance()
}

func (it *KeyIterator[K, V, P]) Current() (K, error) {
	if !it.w.haveCur {
		var zero K
		return zero, ErrInvalidIteratorState
	}
	return it.w.tree.keys[it.w.curIndex], nil
}

// CurrentIsLeaf reports whether the current node is a leaf (vs. a branch).
func (it *KeyIterator[K, V, P]) CurrentIsLeaf() (bool, error) {
	if !it.w.haveCur {
		return false, ErrInvalidIteratorState
	}
	return it.w.tree.isLeaf(it.w.curIndex), nil
}

// Query returns an iterator over the payloads of every leaf whose stored key
// overlaps key.
func (t *Tree[K, V, P]) Query(key K) *ItemIterator[K, V, P] {
	return &ItemIterator[K, V, P]{w: newWalker[K, V, P](t, key, true, true)}
}

// QueryAll returns an iterator over every leaf's payload, unfiltered.
func (t *Tree[K, V, P]) QueryAll() *ItemIterator[K, V, P] {
	var zero K
	return &ItemIterator[K, V, P]{w: newWalker[K, V, P](t, zero, false, true)}
}

// DebugNodes returns an iterator over the stored keys of every node (branch
// or leaf) whose key overlaps key. For introspection/visualization.
func (t *Tree[K, V, P]) DebugNodes(key K) *KeyIterator[K, V, P] {
	return &KeyIterator[K, V, P]{w: newWalker[K, V, P](t, key, true, false)}
}

// DebugAllNodes returns an iterator over the stored keys of every node in
// the arena, branch or leaf. For introspection/visualization.
func (t *Tree[K, V, P]) DebugAllNodes() *KeyIterator[K, V, P] {
	var zero K
	return &KeyIterator[K, V, P]{w: newWalker[K, V, P](t, zero, false, false)}
}

// QuerySlice buffers Query(key) into a slice in one call.
func (t *Tree[K, V, P]) QuerySlice(key K) ([]P, error) {
	return drain(t.Query(key))
}

// QueryAllSlice buffers QueryAll() into a slice in one call.
func (t *Tree[K, V, P]) QueryAllSlice() ([]P, error) {
	return drain(t.QueryAll())
}

func drain[K any, V any, P any](it *ItemIterator[K, V, P]) ([]P, error) {
	var out []P
	for {
		ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		v, err := it.Current()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
