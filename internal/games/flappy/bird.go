package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// AssetBird is the sprite key renderers look up for the bird image.
const AssetBird = "bird"

// tiltPerVelocity converts vertical speed to sprite tilt in degrees.
const tiltPerVelocity = 3.0

// Bird is the player. X is fixed; only Y and Velocity change.
type Bird struct {
	X        float64 // Horizontal position, constant for the run
	Y        float64 // Top edge of the hitbox
	Velocity float64 // Vertical speed, negative = up
	Size     float64 // Side of the square hitbox

	gravity float64
	jump    float64
}

// NewBird creates a bird at the start position with zero velocity.
func NewBird(cfg config.FlappyConfig) Bird {
	return Bird{
		X:       float64(cfg.Bird.X),
		Y:       float64(cfg.Screen.Height / 2),
		Size:    float64(cfg.Bird.Size),
		gravity: cfg.Physics.Gravity,
		jump:    cfg.Physics.JumpStrength,
	}
}

// Jump replaces the current velocity with the upward impulse.
func (b *Bird) Jump() {
	b.Velocity = b.jump
}

// Update advances one tick: gravity first, then position.
func (b *Bird) Update() {
	b.Velocity += b.gravity
	b.Y += b.Velocity
}

// Rect returns the collision rectangle.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Draw appends the bird sprite. Without an image the renderer draws a
// yellow disc with a black rim. Tilt is cosmetic only.
func (b *Bird) Draw(f *core.Frame) {
	f.Add(core.Primitive{
		Kind:     core.PrimSprite,
		Rect:     b.Rect(),
		Asset:    AssetBird,
		Fallback: core.PrimCircle,
		Color:    core.ColorYellow,
		Stroke:   core.ColorBlack,
		Rotation: b.Velocity * tiltPerVelocity,
	})
}
