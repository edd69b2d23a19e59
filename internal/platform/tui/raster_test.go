package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRasterizeScalesRects(t *testing.T) {
	f := core.NewFrame(100, 50, core.ColorSkyBlue)
	f.Add(core.Primitive{Kind: core.PrimFill, Rect: core.NewRect(50, 0, 50, 25), Color: core.ColorPipeGreen}) // top-right quadrant

	s := core.NewScreen(20, 10)
	bg := Rasterize(f, s)

	if bg != core.ColorSkyBlue {
		t.Errorf("background = %v, want sky blue", bg)
	}
	tests := []struct {
		x, y   int
		filled bool
	}{
		{10, 0, true},
		{19, 4, true},
		{9, 0, false},
		{10, 5, false},
		{0, 9, false},
	}
	for _, tt := range tests {
		cell := s.GetCell(tt.x, tt.y)
		if got := cell.Rune == blockRune; got != tt.filled {
			t.Errorf("cell (%d,%d) filled = %v, want %v", tt.x, tt.y, got, tt.filled)
		}
		if tt.filled && cell.Color != core.ColorPipeGreen {
			t.Errorf("cell (%d,%d) color = %v, want pipe green", tt.x, tt.y, cell.Color)
		}
	}
}

func TestRasterizeStrokeNeedsRoom(t *testing.T) {
	tests := []struct {
		name    string
		rect    core.Rect
		wantBox bool
	}{
		{"large", core.NewRect(0, 0, 50, 50), true},
		{"thin", core.NewRect(0, 0, 10, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := core.NewFrame(100, 100, core.ColorSkyBlue)
			f.Add(core.Primitive{Kind: core.PrimFill, Rect: tt.rect, Color: core.ColorPipeGreen, Stroke: core.ColorBlack})
			s := core.NewScreen(10, 10)
			Rasterize(f, s)

			if got := s.Get(0, 0) == '┌'; got != tt.wantBox {
				t.Errorf("corner = %q, want box %v", s.Get(0, 0), tt.wantBox)
			}
		})
	}
}

func TestRasterizeSpriteUsesFallback(t *testing.T) {
	f := core.NewFrame(100, 100, core.ColorSkyBlue)
	f.Add(core.Primitive{
		Kind:     core.PrimSprite,
		Rect:     core.NewRect(40, 40, 20, 20),
		Asset:    "bird",
		Fallback: core.PrimCircle,
		Color:    core.ColorYellow,
		Rotation: 30,
	})

	s := core.NewScreen(10, 10)
	Rasterize(f, s)

	if cell := s.GetCell(5, 5); cell.Rune != blockRune || cell.Color != core.ColorYellow {
		t.Errorf("center cell = %+v, want yellow block", cell)
	}
	if s.Get(0, 0) != ' ' {
		t.Error("corner should stay empty")
	}
}

func TestRasterizeTinyCircleVisible(t *testing.T) {
	f := core.NewFrame(1000, 1000, core.ColorSkyBlue)
	f.Add(core.Primitive{Kind: core.PrimCircle, Rect: core.NewRect(500, 500, 10, 10), Color: core.ColorYellow})

	s := core.NewScreen(10, 10)
	Rasterize(f, s)

	if s.Get(5, 5) != blockRune {
		t.Errorf("tiny circle not drawn:\n%s", s.String())
	}
}

func TestRasterizeTextRowsAndShade(t *testing.T) {
	f := core.NewFrame(800, 480, core.ColorSkyBlue)
	f.Add(core.Primitive{Kind: core.PrimFill, Rect: core.NewRect(0, 0, 80, 480), Color: core.ColorPipeGreen})
	f.Shade()
	f.Text(400, 160, "Paused", core.TextLarge, core.ColorRed)

	s := core.NewScreen(80, 30)
	bg := Rasterize(f, s)

	if bg != shadeBg {
		t.Errorf("background = %v, want shade background", bg)
	}
	if s.GetCell(0, 0).Color != dimColor {
		t.Error("shape under the overlay was not dimmed")
	}

	const row = 10 // 160 * 30/480
	if line := strings.Split(s.String(), "\n")[row]; !strings.Contains(line, "Paused") {
		t.Errorf("row %d = %q, want the title", row, line)
	}
	if cell := s.GetCell(40, row); cell.Color != core.ColorRed {
		t.Errorf("title color = %v, want red (drawn after the shade)", cell.Color)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "Score", core.ColorWhite)

	out := RenderScreen(s, core.ColorSkyBlue)

	if !strings.Contains(out, "Score") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want 2 lines, got %q", out)
	}
}
