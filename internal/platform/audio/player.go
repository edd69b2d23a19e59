// Package audio plays the game's sound cues through beep.
// Playback is best effort: a missing device or file never reaches the
// simulation.
package audio

import "github.com/vovakirdan/tui-flappy/internal/core"

// Player receives the cues raised by a simulation step.
type Player interface {
	Play(s core.Sound)
	Close()
}

// Nop is a Player that ignores every cue. Used with --mute, over SSH,
// and when no audio device is available.
type Nop struct{}

// Play implements Player.
func (Nop) Play(core.Sound) {}

// Close implements Player.
func (Nop) Close() {}

// PlayAll forwards every cue of a step to p.
func PlayAll(p Player, sounds []core.Sound) {
	for _, s := range sounds {
		p.Play(s)
	}
}
