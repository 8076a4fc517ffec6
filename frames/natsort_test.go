package frames

import (
	"reflect"
	"testing"
)

func TestSortNaturalOrdersNumericRuns(t *testing.T) {
	names := []string{"frame_10.png", "frame_2.png", "frame_1.png", "frame_100.png"}
	sortNatural(names)
	want := []string{"frame_1.png", "frame_2.png", "frame_10.png", "frame_100.png"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected order %v", names)
	}
}

func TestSortNaturalMixedRuns(t *testing.T) {
	names := []string{"a10b2", "a2b10", "a2b2", "b1"}
	sortNatural(names)
	want := []string{"a2b2", "a2b10", "a10b2", "b1"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected order %v", names)
	}
}

func TestNaturalLessZeroPadding(t *testing.T) {
	if !naturalLess("img_007.png", "img_8.png") {
		t.Fatalf("expected 007 < 8")
	}
	if naturalLess("img_10.png", "img_010.png") {
		// Numerically equal; ties break lexically and "img_0..." sorts first.
		t.Fatalf("expected img_010 to sort before img_10")
	}
}

func TestNaturalLessPlainStrings(t *testing.T) {
	if !naturalLess("apple", "banana") {
		t.Fatalf("expected plain lexical order")
	}
	if naturalLess("x", "x") {
		t.Fatalf("equal strings must not be less")
	}
}
