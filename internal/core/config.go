package core

// RuntimeConfig contains configuration passed by the platform at startup.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (0 for the window frontend)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Sound is a one-shot audio cue emitted by the simulation.
// Playback is best-effort and never feeds back into game logic.
type Sound int

const (
	SoundNone     Sound = iota
	SoundJump           // Bird flapped
	SoundGameOver       // Bird crashed
	SoundSilence        // Cut any cue still playing (new game started)
)

// String returns a human-readable name for the cue.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundGameOver:
		return "game_over"
	case SoundSilence:
		return "silence"
	default:
		return "none"
	}
}

// GameState is the coarse status the platform needs from the game.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the game
	Ticks     int  // Simulation ticks of the current run
	Started   bool // Whether a run has begun
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the run is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the cues raised during the tick.
type StepResult struct {
	State  GameState
	Sounds []Sound
	// SaveErr is set when a new high score could not be persisted.
	// Play continues; the platform decides how to report it.
	SaveErr error
}
