package model

import "testing"

func TestHUDEmptyWhenNoFrames(t *testing.T) {
	m := NewProgressModel()
	if got := m.HUD(); got != "" {
		t.Fatalf("expected empty HUD before first update, got %q", got)
	}
}

func TestHUDFormat(t *testing.T) {
	m := NewProgressModel()
	m.Update(4, 120, 3, "frame_005.png")
	want := "5/120  |  Brush: 3  |  frame_005.png"
	if got := m.HUD(); got != want {
		t.Fatalf("HUD = %q, want %q", got, want)
	}
}

func TestHUDPositionCapsAtTotal(t *testing.T) {
	m := NewProgressModel()
	m.Update(120, 120, 5, "frame_120.png")
	want := "120/120  |  Brush: 5  |  frame_120.png"
	if got := m.HUD(); got != want {
		t.Fatalf("HUD = %q, want %q", got, want)
	}
}

func TestNilModelIsSafe(t *testing.T) {
	var m *ProgressModel
	m.Update(1, 2, 3, "x")
	if got := m.HUD(); got != "" {
		t.Fatalf("nil model HUD = %q", got)
	}
}
