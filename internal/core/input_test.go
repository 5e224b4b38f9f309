package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("frame should contain the set actions")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestKeyHoldWindow(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewKeyHold(200 * time.Millisecond)

	h.Press(ActionRight, start)

	tests := []struct {
		name     string
		at       time.Duration
		expected bool
	}{
		{"right after press", 0, true},
		{"inside window", 150 * time.Millisecond, true},
		{"window expired", 200 * time.Millisecond, false},
		{"long after", time.Second, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.held(ActionRight, start.Add(tc.at)); got != tc.expected {
				t.Errorf("Held() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewKeyHold(200 * time.Millisecond)

	h.Press(ActionLeft, start)
	h.Press(ActionLeft, start.Add(150*time.Millisecond))

	if !h.held(ActionLeft, start.Add(300*time.Millisecond)) {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestKeyHoldOppositeDirections(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewKeyHold(time.Second)

	h.Press(ActionLeft, now)
	h.Press(ActionJump, now)
	h.Press(ActionRight, now)

	frame := h.Frame(now)
	if frame.Has(ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(ActionRight) || !frame.Has(ActionJump) {
		t.Error("right and jump should both be held")
	}

	h.Reset()
	if len(h.Frame(now).Actions) != 0 {
		t.Error("Reset should release everything")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionJump.String() != "Jump" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
