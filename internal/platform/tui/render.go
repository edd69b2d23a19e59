package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ansi maps core.Color to 256-color codes.
var ansi = map[core.Color]lipgloss.Color{
	core.ColorBlack:     lipgloss.Color("16"),
	core.ColorRed:       lipgloss.Color("1"),
	core.ColorYellow:    lipgloss.Color("220"),
	core.ColorWhite:     lipgloss.Color("15"),
	core.ColorGray:      lipgloss.Color("245"),
	core.ColorSkyBlue:   lipgloss.Color("117"),
	core.ColorPipeGreen: lipgloss.Color("28"),
}

// style returns the style for a foreground/background pair.
func style(fg, bg core.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c, ok := ansi[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansi[bg]; ok {
		s = s.Background(c)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display,
// painting blank cells with bg.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, bg core.Color) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(style(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}
