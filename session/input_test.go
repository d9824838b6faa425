package session

import "testing"

func ptr(f float64) *float64 { return &f }

func TestHandleKey(t *testing.T) {
	v := NewViewer(ModeSelection, studyCards("c1", "c2"), newFakeFavorites())

	if a := v.HandleKey(KeyArrowRight); a != ActionNext || currentID(t, v) != "c2" {
		t.Fatalf("ArrowRight should go next, got %s", a)
	}
	if a := v.HandleKey(KeySpace); a != ActionFlip || !v.Snapshot().Flipped {
		t.Fatalf("Space should flip, got %s", a)
	}
	if a := v.HandleKey(KeyArrowLeft); a != ActionPrevious || currentID(t, v) != "c1" {
		t.Fatalf("ArrowLeft should go previous, got %s", a)
	}
	if a := v.HandleKey("KeyA"); a != ActionNone {
		t.Fatalf("other keys must not be handled, got %s", a)
	}
}

func TestHandleSwipe(t *testing.T) {
	tests := []struct {
		name      string
		gesture   Gesture
		want      Action
		wantIndex int
	}{
		{name: "left swipe", gesture: Gesture{StartX: 200, EndX: ptr(100)}, want: ActionNext, wantIndex: 1},
		{name: "right swipe at start", gesture: Gesture{StartX: 100, EndX: ptr(200)}, want: ActionPrevious, wantIndex: 0},
		{name: "exactly threshold", gesture: Gesture{StartX: 150, EndX: ptr(100)}, want: ActionNone, wantIndex: 0},
		{name: "short drag", gesture: Gesture{StartX: 120, EndX: ptr(100)}, want: ActionNone, wantIndex: 0},
		{name: "tap without move", gesture: Gesture{StartX: 120}, want: ActionNone, wantIndex: 0},
		{name: "starts at zero", gesture: Gesture{StartX: 0, EndX: ptr(-80)}, want: ActionNext, wantIndex: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewer(ModeSelection, studyCards("c1", "c2"), newFakeFavorites())
			if got := v.HandleSwipe(tt.gesture); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
			if idx := v.Snapshot().Index; idx != tt.wantIndex {
				t.Fatalf("expected index %d, got %d", tt.wantIndex, idx)
			}
		})
	}
}
