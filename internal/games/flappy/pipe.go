package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// AssetPipe is the sprite key renderers look up for the pipe image.
const AssetPipe = "pipe"

// Pipe is a pair of obstacles with a gap for the bird to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	Width     float64
	TopHeight int  // Height of the top obstacle, fixed at creation
	Gap       int  // Height of the passable gap
	ScreenH   int  // World height the bottom obstacle extends to
	Passed    bool // Whether the bird has cleared this pipe (for scoring)
}

// NewPipe creates a pipe at x with a top height drawn uniformly from the
// configured inclusive range. The range must be valid (see FlappyConfig.Validate).
func NewPipe(x float64, rng *rand.Rand, cfg config.FlappyConfig) Pipe {
	lo, hi := cfg.TopHeightRange()
	return Pipe{
		X:         x,
		Width:     float64(cfg.Pipes.Width),
		TopHeight: lo + rng.Intn(hi-lo+1),
		Gap:       cfg.Pipes.Gap,
		ScreenH:   cfg.Screen.Height,
	}
}

// Update scrolls the pipe left by speed.
func (p *Pipe) Update(speed float64) {
	p.X -= speed
}

// TopRect returns the collision rectangle for the top obstacle.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.Width, float64(p.TopHeight))
}

// BottomRect returns the collision rectangle for the bottom obstacle.
func (p Pipe) BottomRect() core.Rect {
	bottomY := p.TopHeight + p.Gap
	return core.NewRect(p.X, float64(bottomY), p.Width, float64(p.ScreenH-bottomY))
}

// Draw appends both obstacles. The top image is mirrored so the pipe
// mouth faces the gap.
func (p Pipe) Draw(f *core.Frame) {
	for _, part := range []struct {
		rect core.Rect
		flip bool
	}{
		{p.TopRect(), true},
		{p.BottomRect(), false},
	} {
		f.Add(core.Primitive{
			Kind:     core.PrimSprite,
			Rect:     part.rect,
			Asset:    AssetPipe,
			Fallback: core.PrimFill,
			Color:    core.ColorPipeGreen,
			Stroke:   core.ColorBlack,
			FlipV:    part.flip,
		})
	}
}

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right order.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.FlappyConfig
}

// NewPipeManager creates a pipe manager drawing gap positions from rng.
func NewPipeManager(rng *rand.Rand, cfg config.FlappyConfig) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
	pm.Reset()
	return pm
}

// Reset replaces all pipes with a single pipe beyond the right edge.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.spawn(float64(pm.cfg.Screen.Width + pm.cfg.Pipes.FirstOffset))
}

// Advance moves every pipe left by speed, spawns a new pipe at the right
// edge once the newest one has scrolled past the spacing threshold, and
// drops pipes that are fully off screen.
func (pm *PipeManager) Advance(speed float64) {
	for i := range pm.pipes {
		pm.pipes[i].Update(speed)
	}

	screenW := float64(pm.cfg.Screen.Width)
	if tail, ok := pm.Tail(); !ok || tail.X < screenW-float64(pm.cfg.Pipes.Distance) {
		pm.spawn(screenW)
	}

	// Remove pipes that have moved off the left side
	visible := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+p.Width > 0 {
			visible = append(visible, p)
		}
	}
	pm.pipes = visible
}

// Collides tests if the rectangle overlaps any obstacle.
func (pm *PipeManager) Collides(r core.Rect) bool {
	for _, p := range pm.pipes {
		if r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect()) {
			return true
		}
	}
	return false
}

// MarkPassed flags every pipe whose trailing edge is left of x.
// Returns how many pipes were newly passed.
func (pm *PipeManager) MarkPassed(x float64) int {
	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+pm.pipes[i].Width < x {
			pm.pipes[i].Passed = true
			passed++
		}
	}
	return passed
}

// Pipes returns the active pipes in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Tail returns the most recently spawned pipe.
func (pm *PipeManager) Tail() (Pipe, bool) {
	if len(pm.pipes) == 0 {
		return Pipe{}, false
	}
	return pm.pipes[len(pm.pipes)-1], true
}

// spawn appends a new pipe at x.
func (pm *PipeManager) spawn(x float64) {
	pm.pipes = append(pm.pipes, NewPipe(x, pm.rng, pm.cfg))
}
