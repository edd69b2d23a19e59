package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// logTarget selects where a frontend sends its log.
type logTarget int

const (
	logToFile   logTarget = iota // The terminal is the game surface
	logToStderr                  // Window and server keep the terminal free; --log-file still wins
)

// app holds everything a frontend needs, built from the global flags.
type app struct {
	cfg        config.FlappyConfig
	difficulty string
	seed       int64
	scores     highscore.Store
	history    *storage.Store // Nil when the database is unavailable
	logger     *log.Logger
	logFile    io.Closer
}

// loadConfig resolves the config file, difficulty preset and high score path.
func loadConfig() (config.FlappyConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if flagHighscore != "" {
		cfg.HighscorePath = flagHighscore
	}
	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}

// setup builds the shared collaborators. The run history is optional:
// the game still works without it.
func setup(target logTarget) (*app, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, difficulty: string(preset), seed: flagSeed}
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}

	var w io.Writer = os.Stderr
	if target == logToFile || flagLogFile != "" {
		path := flagLogFile
		if path == "" {
			path = logging.DefaultPath
		}
		f, err := logging.OpenFile(path)
		if err != nil {
			return nil, err
		}
		w, a.logFile = f, f
	}
	a.logger, err = logging.New(w, flagLogLevel, "flappy")
	if err != nil {
		a.close()
		return nil, err
	}

	if flagNoSave {
		a.scores = highscore.NewMemoryStore(0)
	} else {
		a.scores = highscore.NewFileStore(config.ExpandHome(cfg.HighscorePath))
	}

	history, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("run history unavailable", "path", flagDBPath, "error", err)
	} else {
		a.history = history
	}

	a.logger.Debug("starting", "difficulty", a.difficulty, "seed", a.seed, "fps", flagFPS)
	return a, nil
}

// newGame creates a game with the shared config, store and seed.
func (a *app) newGame() (*flappy.Game, error) {
	g, err := flappy.New(a.cfg, a.scores, a.seed)
	if err != nil {
		return nil, fmt.Errorf("cannot start game: %w", err)
	}
	return g, nil
}

// close releases the database and log file.
func (a *app) close() {
	if a.history != nil {
		a.history.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// playerName identifies the local player in the run history.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
