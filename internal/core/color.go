package core

import "image/color"

// Color represents a palette color shared by all renderers.
// The terminal maps it to ANSI 256-color codes, the window to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorYellow
	ColorWhite
	ColorGray
	ColorSkyBlue
	ColorPipeGreen
)

// rgba holds the window palette. Values follow the classic flappy look.
var rgba = map[Color]color.RGBA{
	ColorDefault:   {0x00, 0x00, 0x00, 0x00},
	ColorBlack:     {0x00, 0x00, 0x00, 0xff},
	ColorRed:       {0xff, 0x00, 0x00, 0xff},
	ColorYellow:    {0xff, 0xd7, 0x00, 0xff},
	ColorWhite:     {0xff, 0xff, 0xff, 0xff},
	ColorGray:      {0x8a, 0x8a, 0x8a, 0xff},
	ColorSkyBlue:   {0x87, 0xce, 0xeb, 0xff},
	ColorPipeGreen: {0x22, 0x8b, 0x22, 0xff},
}

// RGBA returns the opaque RGBA value of the color.
// Unknown colors map to fully transparent.
func (c Color) RGBA() color.RGBA {
	return rgba[c]
}
