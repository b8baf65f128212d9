package dtree

// Handle identifies a leaf stored in a Tree. It stays valid across
// insertions and removals of other leaves, and across Update/Move calls
// against the same leaf, until that leaf is explicitly Removed.
type Handle int32

// NilHandle is never returned by Add; Remove treats it as a no-op.
const NilHandle Handle = -1

// Tree is an arena-backed dynamic bounding-volume hierarchy over key type K
// (with motion-vector type V for Move) and payload type P.
type Tree[K any, V any, P any] struct {
	cfg Config[K, V]

	nodes    []node
	keys     []K
	payloads []P

	root         int32
	freelistHead int32
	nodeCount    int
	itemCount    int
	version      uint64

	heap minHeap
}

// New builds an empty Tree from cfg, which is normalized and validated
// first.
func New[K any, V any, P any](cfg Config[K, V]) (*Tree[K, V, P], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K, V, P]{cfg: cfg, root: nilIndex, freelistHead: nilIndex}
	t.initArena(cfg.InitialCapacity)
	return t, nil
}

// Config returns the tree's (normalized) configuration.
func (t *Tree[K, V, P]) Config() Config[K, V] {
	return t.cfg
}

// Clear drops every entry and resets the arena to initialCapacity slots (or
// the default, if non-positive).
func (t *Tree[K, V, P]) Clear(initialCapacity int) {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	t.initArena(initialCapacity)
	t.root = nilIndex
	t.nodeCount = 0
	t.itemCount = 0
	t.version++
}

// Count returns the number of live arena slots, branches and leaves alike.
func (t *Tree[K, V, P]) Count() int { return t.nodeCount }

// ItemCount returns the number of leaves (external items) currently stored.
func (t *Tree[K, V, P]) ItemCount() int { return t.itemCount }

// Version returns the current structural-mutation counter, used by
// iterators to detect concurrent modification.
func (t *Tree[K, V, P]) Version() uint64 { return t.version }

// Bounds returns the root's key and true, or the zero value and false if the
// tree is empty.
func (t *Tree[K, V, P]) Bounds() (K, bool) {
	if t.root == nilIndex {
		var zero K
		return zero, false
	}
	return t.keys[t.root], true
}

// mustLiveLeaf performs the checked-build range validation the spec
// encourages but does not require; free-list membership is not checked (an
// invalid but in-range handle is undefined behavior, per the interface's
// contract).
func (t *Tree[K, V, P]) mustLiveLeaf(h Handle) int32 {
	i := int32(h)
	assert(i >= 0 && int(i) < len(t.nodes), "invalid leaf handle")
	return i
}

// GetKey returns the (possibly fattened) key currently stored for h.
func (t *Tree[K, V, P]) GetKey(h Handle) K {
	return t.keys[t.mustLiveLeaf(h)]
}

// GetItem returns the payload stored for h.
func (t *Tree[K, V, P]) GetItem(h Handle) P {
	return t.payloads[t.mustLiveLeaf(h)]
}

// Add inserts a new leaf for key/payload and returns its handle. key is
// fattened by the configured ExpandConstant before being stored.
func (t *Tree[K, V, P]) Add(key K, payload P) Handle {
	padded := t.cfg.Keys.Expand(key, t.cfg.ExpandConstant)
	leaf := t.popFreelist(padded, payload)
	t.itemCount++
	t.attachLeaf(leaf)
	t.version++
	tracer().P("op", "add").Debugf("dtree: inserted leaf %d", leaf)
	return Handle(leaf)
}

// Remove detaches h's leaf from the tree and releases its arena slot.
// NilHandle is a no-op.
func (t *Tree[K, V, P]) Remove(h Handle) {
	if h == NilHandle {
		return
	}
	L := t.mustLiveLeaf(h)
	t.detachLeaf(L)
	t.pushFreelist(L)
	t.itemCount--
	t.version++
}

// Update replaces h's true key with newKey. If the leaf's current fattened
// key still contains newKey, only the stored key is swapped and the tree
// shape is left untouched (false is returned, no version bump). Otherwise
// the leaf is detached, refattened by ExpandConstant, and reinserted via the
// optimal-sibling search (true is returned); h remains valid either way.
func (t *Tree[K, V, P]) Update(h Handle, newKey K) bool {
	i := t.mustLiveLeaf(h)
	if t.cfg.Keys.Contains(t.keys[i], newKey) {
		t.keys[i] = newKey
		return false
	}
	t.detachLeaf(i)
	t.keys[i] = t.cfg.Keys.Expand(newKey, t.cfg.ExpandConstant)
	t.attachLeaf(i)
	t.version += 2
	return true
}

// Move is Update specialized for a leaf that moved by offset: the fattened
// key is extended asymmetrically in the direction of motion (via MovePad)
// rather than symmetrically, so a leaf moving along a predictable path is
// less likely to need restructuring on the next call. Restructuring is
// skipped only if the stored key still contains padded AND the stored key has
// not grown pathologically large relative to padded (padded expanded by
// MoveConstant must still contain it), so a leaf whose fat key has bloated
// well past its current motion still gets rebuilt. Returns
// true iff the tree was restructured.
func (t *Tree[K, V, P]) Move(h Handle, newKey K, offset V) bool {
	i := t.mustLiveLeaf(h)
	padded := t.cfg.Keys.MovePad(newKey, t.cfg.ExpandConstant, t.cfg.MoveConstant, offset)
	old := t.keys[i]
	if t.cfg.Keys.Contains(old, padded) && t.cfg.Keys.Contains(t.cfg.Keys.Expand(padded, t.cfg.MoveConstant), old) {
		t.keys[i] = padded
		return false
	}
	t.detachLeaf(i)
	t.keys[i] = padded
	t.attachLeaf(i)
	t.version += 2
	return true
}

// attachLeaf inserts the already-keyed leaf L into the tree, either as the
// sole root (empty tree) or by pairing it with the best sibling found by
// chooseSibling and refitting the hierarchy from the new branch upward.
func (t *Tree[K, V, P]) attachLeaf(L int32) {
	if t.root == nilIndex {
		t.root = L
		t.nodes[L].parent = nilIndex
		return
	}
	key := t.keys[L]
	sibling := t.chooseSibling(key)
	oldParent := t.nodes[sibling].parent

	var zero P
	branch := t.popFreelist(t.cfg.Keys.Union(key, t.keys[sibling]), zero)
	t.nodes[branch].parent = oldParent
	t.nodes[branch].height = t.nodes[sibling].height + 1
	t.nodes[branch].childA = sibling
	t.nodes[branch].childB = L
	t.nodes[sibling].parent = branch
	t.nodes[L].parent = branch

	if oldParent == nilIndex {
		t.root = branch
	} else if t.nodes[oldParent].childA == sibling {
		t.nodes[oldParent].childA = branch
	} else {
		t.nodes[oldParent].childB = branch
	}
	// Refit from the new branch itself. Pairing L with a tall sibling leaves
	// the branch's children far apart in height, and one rotation can leave
	// the demoted node still unbalanced, so it is rebalanced again before the
	// walk moves up.
	for i := branch; i != nilIndex; {
		if j := t.balance(i); j != i {
			continue
		}
		a, b := t.nodes[i].childA, t.nodes[i].childB
		t.keys[i] = t.cfg.Keys.Union(t.keys[a], t.keys[b])
		t.nodes[i].height = 1 + maxI32(t.nodes[a].height, t.nodes[b].height)
		i = t.nodes[i].parent
	}
}

// detachLeaf removes L from the tree structure without releasing its arena
// slot: L's parent branch is collapsed away and L's sibling takes the
// parent's place, then the hierarchy above is refitted.
func (t *Tree[K, V, P]) detachLeaf(L int32) {
	if L == t.root {
		t.root = nilIndex
		t.nodes[L].parent = nilIndex
		return
	}
	par := t.nodes[L].parent
	grand := t.nodes[par].parent

	var sibling int32
	if t.nodes[par].childA == L {
		sibling = t.nodes[par].childB
	} else {
		sibling = t.nodes[par].childA
	}

	if par == t.root {
		t.root = sibling
		t.nodes[sibling].parent = nilIndex
	} else {
		if t.nodes[grand].childA == par {
			t.nodes[grand].childA = sibling
		} else {
			t.nodes[grand].childB = sibling
		}
		t.nodes[sibling].parent = grand
		t.refitFrom(grand)
	}
	t.pushFreelist(par)
	t.nodes[L].parent = nilIndex
}
