package spatial

import (
	"errors"
	"testing"

	"github.com/Apostolique/Apos.Spatial/dtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewAABBTreeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spatial")
	defer teardown()
	//
	tree, err := NewAABBTree[string](AABBConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.ItemCount() != 0 {
		t.Fatalf("expected empty tree, got ItemCount=%d", tree.ItemCount())
	}
	if _, ok := tree.Bounds(); ok {
		t.Fatalf("expected Bounds to report false on empty tree")
	}
}

func TestAABBTreeAddAndQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spatial")
	defer teardown()
	//
	tree, err := NewAABBTree[string](AABBConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Add(Rect{X: 0, Y: 0, W: 1, H: 1}, "a")
	tree.Add(Rect{X: 10, Y: 10, W: 1, H: 1}, "b")
	tree.Add(Rect{X: 10.5, Y: 10.5, W: 1, H: 1}, "c")

	got, err := tree.QuerySlice(Rect{X: 9.5, Y: 9.5, W: 2, H: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]bool{"b": true, "c": true}
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %v", got)
	}
	for _, v := range got {
		if !want[v] {
			t.Fatalf("unexpected hit %q", v)
		}
	}
}

func TestAABBTreeRemoveThenQueryMissesIt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spatial")
	defer teardown()
	//
	tree, err := NewAABBTree[string](AABBConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := tree.Add(Rect{X: 0, Y: 0, W: 1, H: 1}, "a")
	tree.Remove(h)

	got, err := tree.QueryAllSlice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no items after removal, got %v", got)
	}
}

func TestAABBTreeBulkQueryThenRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spatial")
	defer teardown()
	//
	tree, err := NewAABBTree[int](AABBConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var hs []dtree.Handle
	for i := 0; i < 30; i++ {
		x := float64(i)
		hs = append(hs, tree.Add(Rect{X: x, Y: 0, W: 1, H: 1}, i))
	}

	got, err := tree.QueryAllSlice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 30 {
		t.Fatalf("expected 30 items before bulk remove, got %d", len(got))
	}

	for _, h := range hs {
		tree.Remove(h)
	}
	if tree.ItemCount() != 0 {
		t.Fatalf("expected tree empty after bulk remove, got ItemCount=%d", tree.ItemCount())
	}
}

func TestAABBTreeMoveAlongStraightPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spatial")
	defer teardown()
	//
	tree, err := NewAABBTree[string](AABBConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := tree.Add(Rect{X: 0, Y: 0, W: 1, H: 1}, "mover")
	restructures := 0
	x := 0.0
	for i := 0; i < 5; i++ {
		x += 0.1
		if tree.Move(h, Rect{X: x, Y: 0, W: 1, H: 1}, Vector2{X: 1, Y: 0}) {
			restructures++
		}
	}
	if got := tree.GetItem(h); got != "mover" {
		t.Fatalf("expected handle to remain valid across moves, got %q", got)
	}
	if restructures == 0 {
		t.Fatalf("expected at least the first move to restructure")
	}
}

func TestAABBTreeIteratorErrorsPropagate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spatial")
	defer teardown()
	//
	tree, err := NewAABBTree[string](AABBConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Add(Rect{X: 0, Y: 0, W: 1, H: 1}, "a")
	tree.Add(Rect{X: 5, Y: 5, W: 1, H: 1}, "b")

	it := tree.QueryAll()
	ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("expected first Next to succeed")
	}
	tree.Add(Rect{X: 9, Y: 9, W: 1, H: 1}, "c")
	_, err = it.Next()
	if !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}
