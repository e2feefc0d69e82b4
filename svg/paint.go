package svg

import "fmt"

// ColorName enumerates the predefined palette.
type ColorName int

const (
	Transparent ColorName = iota - 1
	Aqua
	Black
	Blue
	Brown
	Cyan
	Fuchsia
	Green
	Lime
	Magenta
	Orange
	Purple
	Red
	Silver
	White
	Yellow
)

// Color is an opaque RGB color, or the transparent paint.
type Color struct {
	Transparent      bool
	Red, Green, Blue int
}

// NewColor returns the opaque color with the given 0-255 channels.
func NewColor(red, green, blue int) Color {
	return Color{Red: red, Green: green, Blue: blue}
}

// Color resolves a palette name. Names outside the palette resolve to
// the transparent paint.
func (n ColorName) Color() Color {
	switch n {
	case Aqua:
		return NewColor(0, 255, 255)
	case Black:
		return NewColor(0, 0, 0)
	case Blue:
		return NewColor(0, 0, 255)
	case Brown:
		return NewColor(165, 42, 42)
	case Cyan:
		return NewColor(0, 255, 255)
	case Fuchsia:
		return NewColor(255, 0, 255)
	case Green:
		return NewColor(0, 128, 0)
	case Lime:
		return NewColor(0, 255, 0)
	case Magenta:
		return NewColor(255, 0, 255)
	case Orange:
		return NewColor(255, 165, 0)
	case Purple:
		return NewColor(128, 0, 128)
	case Red:
		return NewColor(255, 0, 0)
	case Silver:
		return NewColor(192, 192, 192)
	case White:
		return NewColor(255, 255, 255)
	case Yellow:
		return NewColor(255, 255, 0)
	default:
		return Color{Transparent: true}
	}
}

// String renders the color as an SVG paint value.
func (c Color) String() string {
	if c.Transparent {
		return "transparent"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.Red, c.Green, c.Blue)
}

// Fill paints the interior of a shape.
type Fill struct {
	Color Color
}

func NewFill(color Color) Fill {
	return Fill{Color: color}
}

// ToSVG renders the fill attribute fragment.
func (f Fill) ToSVG() string {
	return attribute("fill", f.Color.String())
}

// Stroke paints the outline of a shape. A negative width marks the
// stroke as absent.
type Stroke struct {
	Width      float64
	Color      Color
	NonScaling bool
}

func NewStroke(width float64, color Color, nonScaling bool) Stroke {
	return Stroke{Width: width, Color: color, NonScaling: nonScaling}
}

// NoStroke returns the absent stroke.
func NoStroke() Stroke {
	return Stroke{Width: -1}
}

// ToSVG renders the stroke attribute fragment. An absent stroke
// renders as the empty string whatever its other fields hold.
func (s Stroke) ToSVG() string {
	if s.Width < 0 {
		return ""
	}
	out := attribute("stroke-width", ftoa(s.Width)) + attribute("stroke", s.Color.String())
	if s.NonScaling {
		out += attribute("vector-effect", "non-scaling-stroke")
	}
	return out
}

// Font selects the size and family of text content.
type Font struct {
	Size   float64
	Family string
}

func NewFont(size float64, family string) Font {
	return Font{Size: size, Family: family}
}

// DefaultFont returns 12 unit Verdana.
func DefaultFont() Font {
	return NewFont(12, "Verdana")
}

// ToSVG renders the font attribute fragment.
func (f Font) ToSVG() string {
	return attribute("font-size", ftoa(f.Size)) + attribute("font-family", f.Family)
}
