package core

// Action is a semantic game action, independent of the key or button
// that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Start, flap, restart after a crash
	ActionPause          // Toggle pause
	ActionRestart        // New run after game over
	ActionQuit           // Handled by the frontend, never reaches the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame. Repeated presses within a tick count once.
type InputFrame struct {
	bits uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (a Action) bit() uint8 {
	if a <= ActionNone || a > ActionQuit {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	f.bits |= a.bit()
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
