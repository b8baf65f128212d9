package dtree

import "math"

// heapItem is a candidate subtree root awaiting evaluation during
// optimal-sibling search, keyed by its accumulated delta cost.
type heapItem struct {
	node  int32
	delta float64
}

// minHeap is an array-backed binary min-heap over heapItem.delta. It is
// owned by a Tree and reused across searches via reset, rather than
// reallocated per call.
type minHeap struct {
	items []heapItem
}

func (h *minHeap) reset() {
	h.items = h.items[:0]
}

func (h *minHeap) empty() bool {
	return len(h.items) == 0
}

func (h *minHeap) push(it heapItem) {
	h.items = append(h.items, it)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].delta <= h.items[i].delta {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapItem {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	i := 0
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < len(h.items) && h.items[left].delta < h.items[smallest].delta {
			smallest = left
		}
		if right < len(h.items) && h.items[right].delta < h.items[smallest].delta {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
	return top
}

// chooseSibling runs the branch-and-bound search for the best existing node
// to pair the new key with, rooted at t.root (which must not be nilIndex).
func (t *Tree[K, V, P]) chooseSibling(key K) int32 {
	t.heap.reset()

	rootKey := t.keys[t.root]
	rootArea := t.cfg.Keys.Area(rootKey)
	unionRootArea := t.cfg.Keys.Area(t.cfg.Keys.Union(key, rootKey))
	delta0 := unionRootArea - rootArea
	t.heap.push(heapItem{node: t.root, delta: delta0})

	keyArea := t.cfg.Keys.Area(key)
	bestIndex := t.root
	bestCost := math.Inf(1)

	for !t.heap.empty() {
		it := t.heap.pop()
		n, delta := it.node, it.delta
		nKey := t.keys[n]
		unionArea := t.cfg.Keys.Area(t.cfg.Keys.Union(key, nKey))
		nArea := t.cfg.Keys.Area(nKey)

		cost := unionArea + delta
		if cost < bestCost {
			bestCost = cost
			bestIndex = n
		}

		nextDelta := delta + (unionArea - nArea)
		lowerBound := keyArea + nextDelta
		if lowerBound < bestCost && !t.isLeaf(n) {
			t.heap.push(heapItem{node: t.nodes[n].childA, delta: nextDelta})
			t.heap.push(heapItem{node: t.nodes[n].childB, delta: nextDelta})
		}
	}
	return bestIndex
}
