package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - walk left
	ActionRight          // Right arrow, D - walk right
	ActionJump           // Up arrow, W, Space - jump
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// KeyHold derives held-key state from press events. Terminals report key
// presses and auto-repeats but not releases, so an action stays held until
// the window passes without another press.
type KeyHold struct {
	window time.Duration
	until  map[Action]time.Time
}

// NewKeyHold creates a tracker with the given hold window.
func NewKeyHold(window time.Duration) *KeyHold {
	return &KeyHold{
		window: window,
		until:  make(map[Action]time.Time),
	}
}

// Press records a press (or auto-repeat) of a at time now.
// Pressing one walking direction releases the other.
func (h *KeyHold) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.until, ActionRight)
	case ActionRight:
		delete(h.until, ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// held reports whether a is still held at time now.
func (h *KeyHold) held(a Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Frame returns every action held at time now and forgets expired ones.
func (h *KeyHold) Frame(now time.Time) InputFrame {
	frame := NewInputFrame()
	for a := range h.until {
		if h.held(a, now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}

// Reset releases every action.
func (h *KeyHold) Reset() {
	clear(h.until)
}
