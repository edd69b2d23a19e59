package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Glyphs used when rasterizing shapes onto the cell grid.
const (
	blockRune = '█'
	dimColor  = core.ColorGray
	shadeBg   = core.ColorBlack
)

// Rasterize draws a world-space frame onto the screen, scaling both axes
// so the whole world fits the grid. Sprites always use their fallback
// shape since a terminal cannot show images. Returns the background color
// the screen should be painted with.
func Rasterize(f *core.Frame, dst *core.Screen) core.Color {
	dst.Clear()
	bg := f.Background
	if f.Width <= 0 || f.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return bg
	}

	sx := float64(dst.Width()) / f.Width
	sy := float64(dst.Height()) / f.Height

	for _, p := range f.Primitives {
		kind := p.Kind
		if kind == core.PrimSprite {
			kind = p.Fallback
		}

		switch kind {
		case core.PrimFill:
			fillRect(dst, p.Rect.Scale(sx, sy), p.Color, p.Stroke)
		case core.PrimCircle:
			fillEllipse(dst, p.Rect.Scale(sx, sy), p.Color)
		case core.PrimText:
			row := core.Clamp(int(p.Rect.Y*sy), 0, dst.Height()-1)
			dst.DrawTextCentered(int(p.Rect.X*sx), row, p.Text, p.Color)
		case core.PrimShade:
			dst.Tint(dimColor)
			bg = shadeBg
		}
	}
	return bg
}

// fillRect fills the covered cells and, when there is room for it, draws
// the stroke as a box around them.
func fillRect(dst *core.Screen, r core.Rect, fill, stroke core.Color) {
	x0, y0, x1, y1 := r.Cells()
	dst.FillRect(x0, y0, x1, y1, blockRune, fill)
	if stroke != core.ColorDefault && x1-x0 >= 3 && y1-y0 >= 3 {
		dst.DrawBox(x0, y0, x1, y1, stroke)
	}
}

// fillEllipse fills every cell whose center lies inside the ellipse
// inscribed in r. Tiny ellipses still cover their center cell.
func fillEllipse(dst *core.Screen, r core.Rect, c core.Color) {
	cx, cy := r.Center()
	rx, ry := r.W/2, r.H/2
	if rx <= 0 || ry <= 0 {
		return
	}

	x0, y0, x1, y1 := r.Cells()
	drawn := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				dst.Set(x, y, blockRune, c)
				drawn = true
			}
		}
	}
	if !drawn {
		dst.Set(int(math.Floor(cx)), int(math.Floor(cy)), blockRune, c)
	}
}
