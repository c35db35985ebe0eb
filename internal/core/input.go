package core

// Action is a semantic input, abstracted from physical keys so the same
// game logic runs behind a window, a browser tab or a terminal.
type Action uint8

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionUp           // Up arrow, W, Space - jump
	ActionDown         // Down arrow, S - mapped but unused by gameplay
	ActionQuit         // Q, Ctrl+C - handled by the platform
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

func (a Action) bit() uint8 {
	if a == ActionNone || a > ActionQuit {
		return 0
	}
	return 1 << (a - 1)
}

// InputFrame is the set of actions held down during one simulation tick.
// The zero value holds nothing.
type InputFrame struct {
	held uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Held builds a frame with the given actions held.
func Held(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	f.held |= a.bit()
}

// Release marks an action as not held.
func (f *InputFrame) Release(a Action) {
	f.held &^= a.bit()
}

// Has reports whether the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.held&b != 0
}

// With returns a copy of the frame with the action added.
func (f InputFrame) With(a Action) InputFrame {
	f.Set(a)
	return f
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.held == 0
}

// Clear releases every action.
func (f *InputFrame) Clear() {
	f.held = 0
}
