package core

// PrimitiveKind identifies how a renderer should draw a Primitive.
type PrimitiveKind int

const (
	PrimFill   PrimitiveKind = iota // Filled rectangle, optional Stroke
	PrimCircle                      // Filled circle inscribed in Rect, optional Stroke
	PrimSprite                      // Image asset stretched over Rect, Fallback shape otherwise
	PrimText                        // Text label anchored at Rect.X, Rect.Y
	PrimShade                       // Translucent dimming of the whole scene
)

// TextSize selects one of the two font sizes used by the game.
type TextSize int

const (
	TextSmall TextSize = iota
	TextLarge
)

// Primitive is a single draw command in world coordinates.
type Primitive struct {
	Kind   PrimitiveKind
	Rect   Rect
	Color  Color
	Stroke Color // Outline color for shapes; ColorDefault means none

	// Sprite fields.
	Asset    string        // Asset key, e.g. "bird"
	Fallback PrimitiveKind // Shape drawn when the renderer lacks the asset
	Rotation float64       // Degrees clockwise around the rect center
	FlipV    bool          // Mirror the image vertically

	// Text fields. Text is centered horizontally on Rect.X.
	Text string
	Size TextSize
}

// Frame is the complete draw list for one rendered frame.
type Frame struct {
	Width      float64 // World width the primitives are expressed in
	Height     float64 // World height
	Background Color
	Primitives []Primitive
}

// NewFrame creates an empty frame for a world of the given size.
func NewFrame(width, height float64, bg Color) *Frame {
	return &Frame{
		Width:      width,
		Height:     height,
		Background: bg,
		Primitives: make([]Primitive, 0, 16),
	}
}

// Text appends a text label centered on x.
func (f *Frame) Text(x, y float64, text string, size TextSize, c Color) {
	f.Primitives = append(f.Primitives, Primitive{
		Kind:  PrimText,
		Rect:  Rect{X: x, Y: y},
		Color: c,
		Text:  text,
		Size:  size,
	})
}

// Shade appends a dimming layer over everything drawn so far.
func (f *Frame) Shade() {
	f.Primitives = append(f.Primitives, Primitive{
		Kind:  PrimShade,
		Rect:  Rect{W: f.Width, H: f.Height},
		Color: ColorBlack,
	})
}

// Add appends an arbitrary primitive.
func (f *Frame) Add(p Primitive) {
	f.Primitives = append(f.Primitives, p)
}

// Texts returns the text of every label in draw order.
func (f *Frame) Texts() []string {
	var out []string
	for _, p := range f.Primitives {
		if p.Kind == PrimText {
			out = append(out, p.Text)
		}
	}
	return out
}
