// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Screen        ScreenConfig  `yaml:"screen"`
	Physics       PhysicsConfig `yaml:"physics"`
	Pipes         PipeConfig    `yaml:"pipes"`
	Bird          BirdConfig    `yaml:"bird"`
	Assets        AssetConfig   `yaml:"assets"`
	HighscorePath string        `yaml:"highscore_path"`
}

// ScreenConfig is the fixed world viewport every renderer draws into.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines motion parameters, all per simulation tick.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpStrength   float64 `yaml:"jump_strength"`   // Negative = upward
	PipeSpeed      float64 `yaml:"pipe_speed"`      // Base scroll speed
	SpeedIncrement float64 `yaml:"speed_increment"` // Added per pipe passed
}

// PipeConfig defines pipe geometry and spawning.
type PipeConfig struct {
	Width        int `yaml:"width"`
	Gap          int `yaml:"gap"`           // Vertical clearance between top and bottom obstacle
	Distance     int `yaml:"distance"`      // Horizontal spacing threshold for the next spawn
	FirstOffset  int `yaml:"first_offset"`  // First pipe spawns this far past the right edge
	MinTop       int `yaml:"min_top"`       // Smallest top obstacle height
	BottomMargin int `yaml:"bottom_margin"` // Room kept below the gap when sampling
}

// BirdConfig defines the player sprite.
type BirdConfig struct {
	X    int `yaml:"x"`
	Size int `yaml:"size"`
}

// AssetConfig lists optional media. Empty or unreadable paths fall back
// to primitive shapes and synthesized tones.
type AssetConfig struct {
	BirdImage       string `yaml:"bird_image"`
	PipeImage       string `yaml:"pipe_image"`
	JumpSound       string `yaml:"jump_sound"`
	GameOverSound   string `yaml:"gameover_sound"`
	BackgroundMusic string `yaml:"background_music"`
}

// TopHeightRange returns the inclusive range pipe top heights are drawn from.
func (c FlappyConfig) TopHeightRange() (lo, hi int) {
	return c.Pipes.MinTop, c.Screen.Height - c.Pipes.Gap - c.Pipes.BottomMargin
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
