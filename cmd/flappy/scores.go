package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain  bool
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Browse the best and most recent runs.

Without --plain an interactive table opens (Tab switches between best and
recent runs). With --plain the top 10 runs are printed.

Examples:
  flappy scores
  flappy scores --plain
  flappy scores --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top runs instead of opening the table")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Print statistics for one player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	switch {
	case flagPlayer != "":
		err = printPlayer(store, flagPlayer)
	case flagPlain:
		err = printTop(store)
	default:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, flagFPS, width, height)
	}
	if err != nil {
		store.Close()
		fail("%v", err)
	}
}

func printTop(store *storage.Store) error {
	runs, err := store.TopRuns(10)
	if err != nil {
		return err
	}

	fmt.Println("Flappy Bird - Best Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy' to set the first high score!")
		return nil
	}
	fmt.Print(tui.PlainScores(runs, flagFPS))

	best, err := store.BestScore()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}

func printPlayer(store *storage.Store, player string) error {
	stats, err := store.PlayerStats(player)
	if err != nil {
		return err
	}
	if stats.Runs == 0 {
		fmt.Printf("No runs recorded for %s.\n", player)
		return nil
	}

	fmt.Printf("Player:      %s\n", stats.Player)
	fmt.Printf("Runs:        %d\n", stats.Runs)
	fmt.Printf("Best:        %d\n", stats.Best)
	fmt.Printf("Average:     %.1f\n", stats.AvgScore)
	fmt.Printf("Time flown:  %s\n", tui.FormatTicks(int(stats.TotalTicks), flagFPS))
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
