package window

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	largeTextSize = 32
	smallTextSize = 16
	strokeWidth   = 2
	shadeAlpha    = 150
)

// Renderer draws core frames onto an ebiten image.
type Renderer struct {
	assets *Assets
	font   *text.GoTextFaceSource
}

// NewRenderer loads the bundled pixel font.
func NewRenderer(assets *Assets) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	if assets == nil {
		assets = &Assets{images: map[string]*ebiten.Image{}}
	}
	return &Renderer{assets: assets, font: src}, nil
}

// Draw renders every primitive of f in order.
func (r *Renderer) Draw(screen *ebiten.Image, f *core.Frame) {
	screen.Fill(f.Background.RGBA())
	for _, p := range f.Primitives {
		switch p.Kind {
		case core.PrimFill, core.PrimCircle:
			drawShape(screen, p.Kind, p)
		case core.PrimSprite:
			if img := r.assets.Image(p.Asset); img != nil {
				op := &ebiten.DrawImageOptions{GeoM: spriteGeoM(img.Bounds().Dx(), img.Bounds().Dy(), p)}
				op.Filter = ebiten.FilterLinear
				screen.DrawImage(img, op)
			} else {
				drawShape(screen, p.Fallback, p)
			}
		case core.PrimText:
			r.drawText(screen, p)
		case core.PrimShade:
			c := color.RGBA{A: shadeAlpha}
			vector.DrawFilledRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), c, false)
		}
	}
}

func drawShape(screen *ebiten.Image, kind core.PrimitiveKind, p core.Primitive) {
	x, y := float32(p.Rect.X), float32(p.Rect.Y)
	w, h := float32(p.Rect.W), float32(p.Rect.H)

	if kind == core.PrimCircle {
		cx, cy := x+w/2, y+h/2
		radius := min(w, h) / 2
		vector.DrawFilledCircle(screen, cx, cy, radius, p.Color.RGBA(), true)
		if p.Stroke != core.ColorDefault {
			vector.StrokeCircle(screen, cx, cy, radius, strokeWidth, p.Stroke.RGBA(), true)
		}
		return
	}

	vector.DrawFilledRect(screen, x, y, w, h, p.Color.RGBA(), false)
	if p.Stroke != core.ColorDefault {
		vector.StrokeRect(screen, x, y, w, h, strokeWidth, p.Stroke.RGBA(), false)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, p core.Primitive) {
	size := float64(smallTextSize)
	if p.Size == core.TextLarge {
		size = largeTextSize
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(p.Rect.X, p.Rect.Y)
	op.ColorScale.ScaleWithColor(p.Color.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, p.Text, &text.GoTextFace{Source: r.font, Size: size}, op)
}

// spriteGeoM stretches an imgW x imgH image over the primitive's rect,
// mirrored and rotated around the rect center as requested.
func spriteGeoM(imgW, imgH int, p core.Primitive) ebiten.GeoM {
	var m ebiten.GeoM
	if imgW <= 0 || imgH <= 0 {
		return m
	}

	// Center the image on the origin so flips and rotation pivot there
	m.Translate(-float64(imgW)/2, -float64(imgH)/2)
	m.Scale(p.Rect.W/float64(imgW), p.Rect.H/float64(imgH))
	if p.FlipV {
		m.Scale(1, -1)
	}
	if p.Rotation != 0 {
		m.Rotate(p.Rotation * math.Pi / 180)
	}
	cx, cy := p.Rect.Center()
	m.Translate(cx, cy)
	return m
}
