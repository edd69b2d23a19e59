// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling bird airborne and steers it through gaps in
// an endless stream of scrolling pipes.
package flappy

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

// Overlay layout, in world pixels from the top.
const (
	scoreY     = 50
	titleY     = 150
	line1Y     = 240
	line2Y     = 280
	highscoreY = 330
)

// inputOrder is the order actions are applied when several keys arrive
// in the same frame.
var inputOrder = []core.Action{core.ActionPause, core.ActionJump, core.ActionRestart}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg   config.FlappyConfig
	store highscore.Store

	bird      Bird
	pipes     *PipeManager
	score     int     // Pipes passed in the current run
	highScore int     // Best score, mirrored to the store
	speed     float64 // Current scroll speed
	state     State
	ticks     int // Simulation ticks of the current run

	sounds  []core.Sound // Cues raised during the current step
	saveErr error        // Last failed highscore save in the current step
}

// New creates a game on the title screen. The configuration is validated
// and the high score loaded; a corrupt or unreadable record is an error.
// A nil store keeps the high score in memory only.
func New(cfg config.FlappyConfig, store highscore.Store, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		store = highscore.NewMemoryStore(0)
	}
	best, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("flappy: load highscore: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	return &Game{
		cfg:       cfg,
		store:     store,
		bird:      NewBird(cfg),
		pipes:     NewPipeManager(rng, cfg),
		highScore: best,
		speed:     cfg.Physics.PipeSpeed,
		state:     NotStarted,
	}, nil
}

// Step applies the frame's input and advances the simulation by one tick.
// An error means a new run could not start because the high score could
// not be reloaded.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	g.sounds = nil
	g.saveErr = nil

	if err := g.HandleInput(in); err != nil {
		return core.StepResult{State: g.State()}, err
	}
	g.Update()

	return core.StepResult{
		State:   g.State(),
		Sounds:  g.sounds,
		SaveErr: g.saveErr,
	}, nil
}

// HandleInput runs every action in the frame through the state machine.
func (g *Game) HandleInput(in core.InputFrame) error {
	for _, a := range inputOrder {
		if !in.Has(a) {
			continue
		}
		next, effect := Transition(g.state, a)
		switch effect {
		case EffectReset:
			if err := g.reset(); err != nil {
				return err
			}
		case EffectJump:
			g.bird.Jump()
			g.emit(core.SoundJump)
		}
		g.state = next
	}
	return nil
}

// reset prepares a fresh run. The RNG keeps its sequence so a seeded
// session stays reproducible across restarts.
func (g *Game) reset() error {
	best, err := g.store.Load()
	if err != nil {
		return fmt.Errorf("flappy: reload highscore: %w", err)
	}
	g.highScore = best
	g.bird = NewBird(g.cfg)
	g.pipes.Reset()
	g.score = 0
	g.speed = g.cfg.Physics.PipeSpeed
	g.ticks = 0
	g.emit(core.SoundSilence)
	return nil
}

// Update advances the simulation by one tick. It does nothing unless a
// run is in progress.
func (g *Game) Update() {
	if g.state != Running {
		return
	}
	g.ticks++

	g.bird.Update()
	g.pipes.Advance(g.speed)

	// Collision, scoring and bounds all see the same positions
	birdRect := g.bird.Rect()
	crashed := g.pipes.Collides(birdRect)

	if passed := g.pipes.MarkPassed(g.bird.X); passed > 0 {
		g.score += passed
		g.speed += g.cfg.Physics.SpeedIncrement * float64(passed)
		if g.score > g.highScore {
			// Other sessions may share the store and hold a higher record
			best, err := g.store.Raise(g.score)
			if err != nil {
				g.saveErr = fmt.Errorf("flappy: save highscore: %w", err)
				best = g.score
			}
			g.highScore = max(best, g.score)
		}
	}

	outOfBounds := birdRect.Y < 0 || birdRect.Bottom() > float64(g.cfg.Screen.Height)
	if crashed || outOfBounds {
		g.state = GameOver
		g.emit(core.SoundGameOver)
	}
}

// Draw composes the frame: pipes, bird, score and the overlay for the
// current state.
func (g *Game) Draw() *core.Frame {
	w, h := float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)
	f := core.NewFrame(w, h, core.ColorSkyBlue)

	for _, p := range g.pipes.Pipes() {
		p.Draw(f)
	}
	g.bird.Draw(f)
	f.Text(w/2, scoreY, strconv.Itoa(g.score), core.TextLarge, core.ColorWhite)

	switch g.state {
	case NotStarted:
		g.drawOverlay(f, "Flappy Bird", "Press SPACE to Start", "Keep pressing SPACE to fly!")
	case Paused:
		g.drawOverlay(f, "Paused", "Press P to Resume", "")
	case GameOver:
		g.drawOverlay(f, "Game Over!", fmt.Sprintf("Score: %d", g.score), "Press SPACE to Restart")
	}
	return f
}

// drawOverlay dims the scene and stacks the message lines in the center.
func (g *Game) drawOverlay(f *core.Frame, title, line1, line2 string) {
	cx := f.Width / 2
	f.Shade()
	f.Text(cx, titleY, title, core.TextLarge, core.ColorRed)
	if line1 != "" {
		f.Text(cx, line1Y, line1, core.TextSmall, core.ColorWhite)
	}
	if line2 != "" {
		f.Text(cx, line2Y, line2, core.TextSmall, core.ColorWhite)
	}
	f.Text(cx, highscoreY, fmt.Sprintf("High Score: %d", g.highScore), core.TextSmall, core.ColorYellow)
}

func (g *Game) emit(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Ticks:     g.ticks,
		Started:   g.state != NotStarted,
		GameOver:  g.state == GameOver,
		Paused:    g.state == Paused,
	}
}

// Phase returns the state machine position.
func (g *Game) Phase() State {
	return g.state
}

// Speed returns the current pipe scroll speed.
func (g *Game) Speed() float64 {
	return g.speed
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
