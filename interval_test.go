package spatial

import "testing"

func TestIntervalUnion(t *testing.T) {
	a := Interval{Origin: 0, Length: 2}
	b := Interval{Origin: 5, Length: 1}
	u := intervalKeys{}.Union(a, b)
	want := Interval{Origin: 0, Length: 6}
	if u != want {
		t.Fatalf("expected union %+v, got %+v", want, u)
	}
}

func TestIntervalContains(t *testing.T) {
	outer := Interval{Origin: 0, Length: 10}
	inner := Interval{Origin: 2, Length: 3}
	if !(intervalKeys{}).Contains(outer, inner) {
		t.Fatalf("expected outer to contain inner")
	}
	outside := Interval{Origin: 9, Length: 5}
	if (intervalKeys{}).Contains(outer, outside) {
		t.Fatalf("expected outer not to contain an interval extending past its bounds")
	}
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Origin: 0, Length: 2}
	b := Interval{Origin: 1, Length: 2}
	c := Interval{Origin: 10, Length: 1}
	if !(intervalKeys{}).Overlaps(a, b) {
		t.Fatalf("expected a and b to overlap")
	}
	if (intervalKeys{}).Overlaps(a, c) {
		t.Fatalf("expected a and c not to overlap")
	}
}

func TestIntervalMovePadExtendsAheadOfTravel(t *testing.T) {
	i := Interval{Origin: 0, Length: 1}
	padded := intervalKeys{}.MovePad(i, 0, 5, 1)
	if padded.Origin != 0 {
		t.Fatalf("expected no extension behind travel, got Origin=%v", padded.Origin)
	}
	if padded.Length != 1+5 {
		t.Fatalf("expected Length extended by moveConstant ahead of travel, got %v", padded.Length)
	}

	paddedNeg := intervalKeys{}.MovePad(i, 0, 5, -1)
	if paddedNeg.Origin != -5 {
		t.Fatalf("expected Origin extended behind travel, got %v", paddedNeg.Origin)
	}
}
