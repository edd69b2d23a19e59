// flappy is a Flappy Bird clone for the terminal, a desktop window and SSH.
//
// Usage:
//
//	flappy                 - Play in the terminal
//	flappy play            - Same as above
//	flappy window          - Play in a desktop window
//	flappy serve           - Start SSH server for remote play
//	flappy scores          - Show the run history
//	flappy config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom YAML config
//	--difficulty <name>   - easy, normal, hard or fixed
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible pipe layouts
//	--highscore <path>    - High score file (default: ~/.flappy/highscore.txt)
//	--db <path>           - Run history database (default: ~/.flappy/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagHighscore  string
	flagNoSave     bool
	flagDBPath     string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal, a desktop window or an SSH session.

Guide the bird through the gaps between the pipes. Each pipe passed
scores a point and makes the pipes a little faster.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the run history
  config   - Print the effective configuration

Examples:
  flappy
  flappy --difficulty hard
  flappy window --seed 42
  flappy serve --ssh :2222
  flappy scores --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagHighscore, "highscore", "", "Path to the high score file (overrides highscore_path)")
	pf.BoolVar(&flagNoSave, "no-save", false, "Keep the high score in memory only")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run history database")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (terminal default ~/.flappy/flappy.log; window and server log to stderr)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
