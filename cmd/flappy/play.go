package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/audio"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. This is also what plain 'flappy' does.

Controls:
  Space/Up/W - Start, flap, restart after game over
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower pipes, gentle speed-up
  normal - The configured speeds
  hard   - Faster pipes, steeper speed-up
  fixed  - No speed-up at all

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	a, err := setup(logToFile)
	if err != nil {
		fail("%v", err)
	}

	game, err := a.newGame()
	if err != nil {
		a.close()
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runErr := tui.Run(tui.Options{
		Game:       game,
		Audio:      audio.Open(a.cfg.Assets, flagMute, a.logger),
		History:    a.history,
		Logger:     a.logger,
		Player:     playerName(),
		Difficulty: a.difficulty,
		TickRate:   flagFPS,
		Width:      width,
		Height:     height,
	})

	// Close store before potential exit
	a.close()

	if runErr != nil {
		fail("%v", runErr)
	}
}
