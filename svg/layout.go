package svg

// Origin selects the canvas corner user coordinates grow from.
type Origin uint8

const (
	TopLeft Origin = iota
	BottomLeft
	TopRight
	BottomRight
)

// Layout describes the target canvas: its size, the corner acting as
// origin, and a uniform scale and offset applied to user coordinates.
type Layout struct {
	Dimensions   Dimensions
	Scale        float64
	Origin       Origin
	OriginOffset Point
}

func NewLayout(dimensions Dimensions, origin Origin, scale float64, originOffset Point) Layout {
	return Layout{
		Dimensions:   dimensions,
		Scale:        scale,
		Origin:       origin,
		OriginOffset: originOffset,
	}
}

// DefaultLayout returns a 400x300 canvas with a bottom-left origin,
// unit scale and no offset.
func DefaultLayout() Layout {
	return NewLayout(NewDimensions(400, 300), BottomLeft, 1, Point{})
}

// TranslateX maps a user space x coordinate to output space. Origins
// on the right edge mirror the coordinate across the canvas width.
func (l Layout) TranslateX(x float64) float64 {
	if l.Origin == BottomRight || l.Origin == TopRight {
		return l.Dimensions.Width - (x+l.OriginOffset.X)*l.Scale
	}
	return (l.OriginOffset.X + x) * l.Scale
}

// TranslateY maps a user space y coordinate to output space. Origins
// on the bottom edge mirror the coordinate across the canvas height.
func (l Layout) TranslateY(y float64) float64 {
	if l.Origin == BottomLeft || l.Origin == BottomRight {
		return l.Dimensions.Height - (y+l.OriginOffset.Y)*l.Scale
	}
	return (l.OriginOffset.Y + y) * l.Scale
}

// TranslateScale applies the layout scale to a scalar dimension.
func (l Layout) TranslateScale(dimension float64) float64 {
	return dimension * l.Scale
}
