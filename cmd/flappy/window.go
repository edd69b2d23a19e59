package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/audio"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x450 window and play there.

Bird and pipe images from the config's assets section are used when they
load; otherwise the game draws the same shapes as the terminal version.

Controls:
  Space/Up/W - Start, flap, restart after game over
  P          - Pause
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  flappy window
  flappy window --config ./with-images.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	a, err := setup(logToStderr)
	if err != nil {
		fail("%v", err)
	}

	game, err := a.newGame()
	if err != nil {
		a.close()
		fail("%v", err)
	}

	runErr := window.Run(window.Options{
		Game:       game,
		Assets:     a.cfg.Assets,
		Audio:      audio.Open(a.cfg.Assets, flagMute, a.logger),
		History:    a.history,
		Logger:     a.logger,
		Player:     playerName(),
		Difficulty: a.difficulty,
		TickRate:   flagFPS,
	})

	a.close()

	if runErr != nil {
		fail("%v", runErr)
	}
}
