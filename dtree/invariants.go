package dtree

import "fmt"

// Check validates the five structural invariants a well-formed Tree must
// satisfy: every reachable node's parent link points back correctly, every
// branch's key is the union of its children's keys, every branch's height
// is 1 + the taller child's height, the AVL height-balance property holds
// everywhere, and the reachable-plus-free slot counts account for the whole
// arena. It is intended for use after mutations in tests, not on any hot
// path.
func (t *Tree[K, V, P]) Check() error {
	if t.root == nilIndex {
		if t.itemCount != 0 || t.nodeCount != 0 {
			return fmt.Errorf("%w: empty tree must report zero counts", ErrInvalidConfig)
		}
		return nil
	}
	visited := make(map[int32]bool, t.nodeCount)
	if _, _, err := t.checkNode(t.root, nilIndex, visited); err != nil {
		return err
	}
	if len(visited) != t.nodeCount {
		return fmt.Errorf("%w: reachable node count %d does not match nodeCount %d", ErrInvalidConfig, len(visited), t.nodeCount)
	}

	free := make(map[int32]bool)
	for i := t.freelistHead; i != nilIndex; i = t.nodes[i].childA {
		if visited[i] {
			return fmt.Errorf("%w: slot %d is both reachable and on the free list", ErrInvalidConfig, i)
		}
		if free[i] {
			return fmt.Errorf("%w: free list cycles back to slot %d", ErrInvalidConfig, i)
		}
		free[i] = true
	}
	if len(visited)+len(free) != len(t.nodes) {
		return fmt.Errorf("%w: live+free slots %d does not match arena capacity %d", ErrInvalidConfig, len(visited)+len(free), len(t.nodes))
	}
	return nil
}

func (t *Tree[K, V, P]) checkNode(i, expectedParent int32, visited map[int32]bool) (K, int32, error) {
	var zero K
	if visited[i] {
		return zero, 0, fmt.Errorf("%w: node %d reached twice", ErrInvalidConfig, i)
	}
	visited[i] = true
	if t.nodes[i].parent != expectedParent {
		return zero, 0, fmt.Errorf("%w: node %d parent is %d, want %d", ErrInvalidConfig, i, t.nodes[i].parent, expectedParent)
	}
	if t.isLeaf(i) {
		if t.nodes[i].height != 0 {
			return zero, 0, fmt.Errorf("%w: leaf %d has nonzero height %d", ErrInvalidConfig, i, t.nodes[i].height)
		}
		return t.keys[i], 0, nil
	}

	a, b := t.nodes[i].childA, t.nodes[i].childB
	keyA, heightA, err := t.checkNode(a, i, visited)
	if err != nil {
		return zero, 0, err
	}
	keyB, heightB, err := t.checkNode(b, i, visited)
	if err != nil {
		return zero, 0, err
	}
	if absI32(heightA-heightB) > 1 {
		return zero, 0, fmt.Errorf("%w: node %d is unbalanced (child heights %d, %d)", ErrInvalidConfig, i, heightA, heightB)
	}
	wantHeight := 1 + maxI32(heightA, heightB)
	if t.nodes[i].height != wantHeight {
		return zero, 0, fmt.Errorf("%w: node %d height is %d, want %d", ErrInvalidConfig, i, t.nodes[i].height, wantHeight)
	}
	wantKey := t.cfg.Keys.Union(keyA, keyB)
	if !t.cfg.Keys.Equal(t.keys[i], wantKey) {
		return zero, 0, fmt.Errorf("%w: node %d key is not the union of its children's keys", ErrInvalidConfig, i)
	}
	return t.keys[i], t.nodes[i].height, nil
}
