package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// State is the phase of a game. Exactly one is active at a time.
type State int

const (
	NotStarted State = iota // Title screen, nothing moves
	Running                 // Simulation advances every tick
	Paused                  // Frozen until resumed
	GameOver                // Run ended, waiting for restart
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Effect is the side effect the controller must apply after a transition.
type Effect int

const (
	EffectNone  Effect = iota
	EffectReset        // Start a fresh run
	EffectJump         // Apply the jump impulse
)

// Transition returns the next state for an input action and the effect
// that goes with it. Entering GameOver is not an input transition; it
// happens inside Update.
func Transition(s State, a core.Action) (State, Effect) {
	switch s {
	case NotStarted:
		if a == core.ActionJump {
			return Running, EffectReset
		}
	case Running:
		switch a {
		case core.ActionJump:
			return Running, EffectJump
		case core.ActionPause:
			return Paused, EffectNone
		}
	case Paused:
		// Flaps are dropped while paused so resuming never starts mid-jump
		if a == core.ActionPause {
			return Running, EffectNone
		}
	case GameOver:
		if a == core.ActionJump || a == core.ActionRestart {
			return Running, EffectReset
		}
	}
	return s, EffectNone
}
