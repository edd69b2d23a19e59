package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 450,
		},
		Physics: PhysicsConfig{
			Gravity:        0.3,
			JumpStrength:   -7.5,
			PipeSpeed:      2.5,
			SpeedIncrement: 0.02,
		},
		Pipes: PipeConfig{
			Width:        80,
			Gap:          190,
			Distance:     280,
			FirstOffset:  200,
			MinTop:       50,
			BottomMargin: 100,
		},
		Bird: BirdConfig{
			X:    150,
			Size: 50,
		},
		HighscorePath: "~/.flappy/highscore.txt",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
