// Package window runs the game in a desktop window using ebiten.
// It draws the same frames as the terminal frontend, but at world
// resolution, and blits the optional bird and pipe images.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/audio"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const title = "Flappy Bird"

// keyBindings maps physical keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// collectInput builds the input frame from the keys pressed this tick.
// It reports quit separately since the game never sees it.
func collectInput(justPressed func(ebiten.Key) bool) (core.InputFrame, bool) {
	in := core.NewInputFrame()
	quit := false
	for _, b := range keyBindings {
		if !justPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			quit = true
			continue
		}
		in.Set(b.action)
	}
	return in, quit
}

// Options configures a windowed game session.
type Options struct {
	Game       *flappy.Game
	Assets     config.AssetConfig
	Audio      audio.Player   // Nil means silent
	History    *storage.Store // Nil disables run history
	Logger     *log.Logger    // Nil discards
	Player     string
	Difficulty string
	TickRate   int
}

// Runner implements ebiten.Game around a flappy game.
type Runner struct {
	session  *session.Session
	renderer *Renderer
	width    int
	height   int
}

// NewRunner prepares the assets and font for opts.Game.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	renderer, err := NewRenderer(LoadAssets(opts.Assets, opts.Logger))
	if err != nil {
		return nil, err
	}

	screen := opts.Game.Config().Screen
	return &Runner{
		session: session.New(session.Options{
			Game:       opts.Game,
			Audio:      opts.Audio,
			History:    opts.History,
			Logger:     opts.Logger,
			Player:     opts.Player,
			Difficulty: opts.Difficulty,
		}),
		renderer: renderer,
		width:    screen.Width,
		height:   screen.Height,
	}, nil
}

// Update advances the game one tick.
func (r *Runner) Update() error {
	in, quit := collectInput(inpututil.IsKeyJustPressed)
	if quit {
		return ebiten.Termination
	}
	_, err := r.session.Step(in)
	return err
}

// Draw renders the current frame.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.renderer.Draw(screen, r.session.Frame())
}

// Layout keeps the world resolution; ebiten scales it to the window.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.width, r.height
}

// Run opens the window and plays until it is closed or the player quits.
func Run(opts Options) error {
	r, err := NewRunner(opts)
	if err != nil {
		return err
	}
	defer r.session.Close()

	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	ebiten.SetWindowSize(r.width, r.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
