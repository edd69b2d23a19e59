package config

import "fmt"

// presetScaling describes how a preset rescales the configured speeds.
type presetScaling struct {
	speed     float64 // Multiplier on the base pipe speed
	increment float64 // Multiplier on the per-pipe speed increment
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {speed: 0.8, increment: 0.5},
	DifficultyNormal: {speed: 1.0, increment: 1.0},
	DifficultyHard:   {speed: 1.3, increment: 1.5},
	DifficultyFixed:  {speed: 1.0, increment: 0.0},
}

// ParsePreset converts a CLI value to a preset.
// An empty string means "use the config as-is".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed keeps the base speed for the whole run.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	scale, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Physics.PipeSpeed *= scale.speed
	cfg.Physics.SpeedIncrement *= scale.increment
}
