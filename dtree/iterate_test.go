package dtree

import (
	"errors"
	"testing"
)

func TestQueryFiltersByOverlap(t *testing.T) {
	tree := newTestTree(t)
	tree.Add(testKey{Lo: 0, Hi: 1}, "a")
	tree.Add(testKey{Lo: 5, Hi: 6}, "b")
	tree.Add(testKey{Lo: 10, Hi: 11}, "c")

	got, err := tree.QuerySlice(testKey{Lo: 4.5, Hi: 5.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected [b], got %v", got)
	}
}

func TestQueryAllVisitsEveryLeaf(t *testing.T) {
	tree := newTestTree(t)
	const n = 200
	for i := 0; i < n; i++ {
		lo := float64(i)
		tree.Add(testKey{Lo: lo, Hi: lo + 1}, "item")
	}
	got, err := tree.QueryAllSlice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d items, got %d", n, len(got))
	}
}

func TestDebugAllNodesVisitsBranchesAndLeaves(t *testing.T) {
	tree := newTestTree(t)
	for i := 0; i < 10; i++ {
		lo := float64(i)
		tree.Add(testKey{Lo: lo, Hi: lo + 1}, "item")
	}
	it := tree.DebugAllNodes()
	count := 0
	for {
		ok, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		if _, err := it.Current(); err != nil {
			t.Fatalf("unexpected error reading current: %v", err)
		}
		count++
	}
	if count != tree.Count() {
		t.Fatalf("expected to visit all %d arena slots, visited %d", tree.Count(), count)
	}
}

func TestIteratorDetectsConcurrentModification(t *testing.T) {
	tree := newTestTree(t)
	tree.Add(testKey{Lo: 0, Hi: 1}, "a")
	tree.Add(testKey{Lo: 5, Hi: 6}, "b")

	it := tree.QueryAll()
	ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("expected first Next to succeed, got ok=%v err=%v", ok, err)
	}

	tree.Add(testKey{Lo: 10, Hi: 11}, "c")

	_, err = it.Next()
	if !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestCurrentBeforeNextIsInvalidState(t *testing.T) {
	tree := newTestTree(t)
	tree.Add(testKey{Lo: 0, Hi: 1}, "a")
	it := tree.QueryAll()
	if _, err := it.Current(); !errors.Is(err, ErrInvalidIteratorState) {
		t.Fatalf("expected ErrInvalidIteratorState, got %v", err)
	}
}

func TestCurrentAfterExhaustionIsInvalidState(t *testing.T) {
	tree := newTestTree(t)
	tree.Add(testKey{Lo: 0, Hi: 1}, "a")
	it := tree.QueryAll()
	for {
		ok, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
	}
	if _, err := it.Current(); !errors.Is(err, ErrInvalidIteratorState) {
		t.Fatalf("expected ErrInvalidIteratorState after exhaustion, got %v", err)
	}
}

// TestQueryAllLargeTreeVisitsEveryLeaf checks that a query over 2000 leaves
// visits every one. The traversal stack holds about one pending node per tree
// level (11 for this tree), so it stays well below stackInitialCapacity and
// its growth by append is not exercised here.
func TestQueryAllLargeTreeVisitsEveryLeaf(t *testing.T) {
	tree := newTestTree(t)
	const n = 2000
	for i := 0; i < n; i++ {
		lo := float64(i)
		tree.Add(testKey{Lo: lo, Hi: lo + 1}, "item")
	}
	got, err := tree.QueryAllSlice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected to visit all %d leaves, visited %d", n, len(got))
	}
}
