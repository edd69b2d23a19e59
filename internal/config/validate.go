package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for any configuration that the
// simulation cannot run with.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the preconditions the simulation relies on.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0,
		"screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Bird.Size > 0, "bird.size must be positive, got %d", c.Bird.Size)
	check(c.Pipes.Width > 0, "pipes.width must be positive, got %d", c.Pipes.Width)
	check(c.Pipes.Gap > 0, "pipes.gap must be positive, got %d", c.Pipes.Gap)
	check(c.Pipes.Distance > 0, "pipes.distance must be positive, got %d", c.Pipes.Distance)
	check(c.Pipes.MinTop >= 0, "pipes.min_top must not be negative, got %d", c.Pipes.MinTop)
	check(c.Pipes.BottomMargin >= 0, "pipes.bottom_margin must not be negative, got %d", c.Pipes.BottomMargin)
	check(c.Physics.PipeSpeed > 0, "physics.pipe_speed must be positive, got %g", c.Physics.PipeSpeed)
	check(c.Physics.SpeedIncrement >= 0, "physics.speed_increment must not be negative, got %g", c.Physics.SpeedIncrement)

	lo, hi := c.TopHeightRange()
	check(hi >= lo,
		"pipe top range [%d, %d] is empty: screen.height - pipes.gap - pipes.bottom_margin must be >= pipes.min_top",
		lo, hi)

	return errors.Join(errs...)
}
