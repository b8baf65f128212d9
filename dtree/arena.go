package dtree

// nilIndex marks the absence of a node, used for parent links, child links
// on leaves, and as the terminator of the free list.
const nilIndex int32 = -1

// node is the fixed-size part of an arena slot. A slot is free when it is
// threaded into the free list (see Tree.freelistHead); childA then holds the
// index of the next free slot rather than a real child.
type node struct {
	childA, childB int32
	parent         int32
	height         int32
}

func (t *Tree[K, V, P]) isLeaf(i int32) bool {
	return t.nodes[i].childA == nilIndex
}

// initArena (re)allocates the three parallel slices at the given capacity
// and threads every slot into the free list. Any prior content is discarded;
// callers reset root/counts themselves.
func (t *Tree[K, V, P]) initArena(capacity int) {
	if capacity <= 0 {
		capacity = DefaultInitialCapacity
	}
	t.nodes = make([]node, capacity)
	t.keys = make([]K, capacity)
	t.payloads = make([]P, capacity)
	for i := 0; i < capacity-1; i++ {
		t.nodes[i] = node{childA: int32(i + 1), childB: nilIndex, parent: nilIndex}
	}
	t.nodes[capacity-1] = node{childA: nilIndex, childB: nilIndex, parent: nilIndex}
	t.freelistHead = 0
}

// grow doubles the arena's capacity, relinking the newly created slots onto
// the free list. Existing indices remain valid.
func (t *Tree[K, V, P]) grow() {
	oldCap := int32(len(t.nodes))
	newCap := oldCap * 2

	newNodes := make([]node, newCap)
	copy(newNodes, t.nodes)
	newKeys := make([]K, newCap)
	copy(newKeys, t.keys)
	newPayloads := make([]P, newCap)
	copy(newPayloads, t.payloads)

	for i := oldCap; i < newCap-1; i++ {
		newNodes[i] = node{childA: i + 1, childB: nilIndex, parent: nilIndex}
	}
	newNodes[newCap-1] = node{childA: nilIndex, childB: nilIndex, parent: nilIndex}

	t.nodes = newNodes
	t.keys = newKeys
	t.payloads = newPayloads
	t.freelistHead = oldCap
	tracer().P("op", "grow").Debugf("dtree: arena grown from %d to %d slots", oldCap, newCap)
}

// popFreelist claims a slot for key/payload, growing the arena first if the
// free list is exhausted.
func (t *Tree[K, V, P]) popFreelist(key K, payload P) int32 {
	if t.freelistHead == nilIndex {
		t.grow()
	}
	i := t.freelistHead
	t.freelistHead = t.nodes[i].childA
	t.nodes[i] = node{childA: nilIndex, childB: nilIndex, parent: nilIndex, height: 0}
	t.keys[i] = key
	t.payloads[i] = payload
	t.nodeCount++
	return i
}

// pushFreelist releases slot i back onto the free list and clears its
// payload so a dropped reference does not keep garbage reachable.
func (t *Tree[K, V, P]) pushFreelist(i int32) {
	var zero P
	t.payloads[i] = zero
	t.nodes[i].childA = t.freelistHead
	t.freelistHead = i
	t.nodeCount--
}
