package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/audio"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// screenshotDir is where ctrl+s snapshots are written.
const screenshotDir = "~/.flappy/screenshots"

// Options configures a terminal game session.
type Options struct {
	Game       *flappy.Game
	Audio      audio.Player   // Nil means silent
	History    *storage.Store // Nil disables run history
	Logger     *log.Logger    // Nil discards
	Player     string         // Name recorded with each run
	Difficulty string         // Preset name recorded with each run
	TickRate   int
	Width      int // Initial terminal size; updated by resize messages
	Height     int
}

// Model is the Bubble Tea model for the terminal game.
type Model struct {
	game       *flappy.Game
	session    *session.Session
	screen     *core.Screen
	logger     *log.Logger
	tickRate   int
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	quitting   bool
	err        error // Fatal error that ended the session
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	return Model{
		game: opts.Game,
		session: session.New(session.Options{
			Game:       opts.Game,
			Audio:      opts.Audio,
			History:    opts.History,
			Logger:     opts.Logger,
			Player:     opts.Player,
			Difficulty: opts.Difficulty,
		}),
		screen:     core.NewScreen(opts.Width, gameRows(opts.Height)),
		logger:     opts.Logger,
		tickRate:   opts.TickRate,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// gameRows leaves the last terminal row for the help footer.
func gameRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its size; only the raster grid follows the terminal
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	_, err := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	Rasterize(m.game.Draw(), m.screen)

	dir := config.ExpandHome(screenshotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bg := Rasterize(m.game.Draw(), m.screen)
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	return RenderScreen(m.screen, bg) + "\n" + footer
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays the game in the terminal until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.session.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
