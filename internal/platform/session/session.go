// Package session drives one game for a frontend: it steps the
// simulation, forwards sound cues, reports failed high score saves and
// records every finished run in the history.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/audio"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a session.
type Options struct {
	Game       *flappy.Game
	Audio      audio.Player   // Nil means silent
	History    *storage.Store // Nil disables run history
	Logger     *log.Logger    // Nil discards
	Player     string         // Name recorded with each run
	Difficulty string         // Preset name recorded with each run
}

// Session owns the per-tick plumbing around a game.
type Session struct {
	game       *flappy.Game
	audio      audio.Player
	history    *storage.Store
	logger     *log.Logger
	player     string
	difficulty string
	state      core.GameState
	runSaved   bool // Whether the current game over has been recorded
}

// New creates a session around opts.Game.
func New(opts Options) *Session {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Session{
		game:       opts.Game,
		audio:      opts.Audio,
		history:    opts.History,
		logger:     opts.Logger,
		player:     opts.Player,
		difficulty: opts.Difficulty,
		state:      opts.Game.State(),
	}
}

// Step advances the game by one tick. The error is fatal for the
// frontend: a new run could not load the high score.
func (s *Session) Step(in core.InputFrame) (core.GameState, error) {
	result, err := s.game.Step(in)
	if err != nil {
		s.logger.Error("cannot start a new run", "error", err)
		return s.state, err
	}

	if result.SaveErr != nil {
		s.logger.Error("high score not saved", "error", result.SaveErr)
	}
	audio.PlayAll(s.audio, result.Sounds)

	s.state = result.State
	switch {
	case s.state.GameOver && !s.runSaved:
		s.recordRun()
		s.runSaved = true
	case !s.state.GameOver:
		s.runSaved = false
	}
	return s.state, nil
}

// recordRun stores the finished run in the history. Best effort.
func (s *Session) recordRun() {
	s.logger.Info("run finished",
		"player", s.player,
		"score", s.state.Score,
		"ticks", s.state.Ticks,
	)
	if s.history == nil {
		return
	}
	if _, err := s.history.SaveRun(storage.Run{
		Player:     s.player,
		Score:      s.state.Score,
		Ticks:      s.state.Ticks,
		Difficulty: s.difficulty,
	}); err != nil {
		s.logger.Error("run not recorded", "error", err)
	}
}

// State returns the state after the last step.
func (s *Session) State() core.GameState {
	return s.state
}

// Frame composes the current frame.
func (s *Session) Frame() *core.Frame {
	return s.game.Draw()
}

// Close releases the audio device.
func (s *Session) Close() {
	s.audio.Close()
}
