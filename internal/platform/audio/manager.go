package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	sampleRate  = beep.SampleRate(44100)
	musicVolume = 0.5
)

// Manager plays cues on the system speaker through one mixer.
type Manager struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	jump     *beep.Buffer
	gameOver *beep.Buffer
	music    *beep.Buffer

	gameOverCtrl *beep.Ctrl // Last game-over cue, cut by jumps and new runs
	closed       bool
}

// NewManager opens the speaker and prepares every cue. Sound files that
// cannot be loaded are logged and replaced with synthesized tones; a
// missing music file means no music.
func NewManager(assets config.AssetConfig, logger *log.Logger) (*Manager, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	m := &Manager{
		mixer:    &beep.Mixer{},
		jump:     loadOr(assets.JumpSound, "jump sound", JumpTone, logger),
		gameOver: loadOr(assets.GameOverSound, "game over sound", GameOverTone, logger),
	}

	if assets.BackgroundMusic != "" {
		music, err := LoadWAV(assets.BackgroundMusic, sampleRate)
		if err != nil {
			logger.Warn("background music unavailable", "path", assets.BackgroundMusic, "error", err)
		} else {
			m.music = music
			m.mixer.Add(newVolume(beep.Loop(-1, music.Streamer(0, music.Len())), musicVolume))
		}
	}

	speaker.Play(m.mixer)
	return m, nil
}

// loadOr loads the WAV at path, or synthesizes a tone when the path is
// empty or unusable.
func loadOr(path, name string, synth func(beep.SampleRate) beep.Streamer, logger *log.Logger) *beep.Buffer {
	if path != "" {
		buf, err := LoadWAV(path, sampleRate)
		if err == nil {
			return buf
		}
		logger.Warn(name+" unavailable, using synthesized tone", "path", path, "error", err)
	}
	return bufferOf(synth(sampleRate), sampleRate)
}

// Play starts the cue. A jump or a new run cuts a game-over cue that is
// still playing.
func (m *Manager) Play(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	switch s {
	case core.SoundJump:
		m.stopGameOver()
		m.mixer.Add(m.jump.Streamer(0, m.jump.Len()))
	case core.SoundGameOver:
		m.stopGameOver()
		m.gameOverCtrl = &beep.Ctrl{Streamer: m.gameOver.Streamer(0, m.gameOver.Len())}
		m.mixer.Add(m.gameOverCtrl)
	case core.SoundSilence:
		m.stopGameOver()
	}
}

// stopGameOver drops the game-over stream; the mixer removes a Ctrl
// whose streamer is nil. Caller holds the speaker lock.
func (m *Manager) stopGameOver() {
	if m.gameOverCtrl != nil {
		m.gameOverCtrl.Streamer = nil
		m.gameOverCtrl = nil
	}
}

// Close stops all sound and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true

	speaker.Clear()
	speaker.Close()
}

// Open returns a beep Manager, or Nop when muted or when no audio device
// can be opened.
func Open(assets config.AssetConfig, mute bool, logger *log.Logger) Player {
	if mute {
		return Nop{}
	}
	m, err := NewManager(assets, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return Nop{}
	}
	return m
}
