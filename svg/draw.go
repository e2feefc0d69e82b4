package svg

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Rasterization support. A Driver implements the actual paint
// operations, such as a rasterizer producing .png images; shapes
// flatten themselves into drawer calls, with every coordinate already
// mapped to output space through a Layout.

// Drawer knows how to do the actual draw operations but needs no
// knowledge of the document model.
type Drawer interface {
	// Clear resets the internal state (used before painting a new figure)
	Clear()

	// Start starts a new figure at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to b.
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the figure.
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the figure.
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop ends the figure, closing it to the start point if closeLoop
	// is true.
	Stop(closeLoop bool)

	// SetColor sets the paint for the current figure.
	SetColor(color Color)

	// Draw fills or strokes the accumulated figure using the current
	// settings.
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the non-zero winding rule for the current figure.
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current figure.
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and is called once per
	// shape. If a willXXX boolean is false the matching drawer must be
	// nil, so useless passes are skipped. When both are true, the exact
	// same draw operations are performed on the Filler first and then
	// on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// JoinMode specifies how stroke segments bridge the gap at a join.
type JoinMode uint8

const (
	Miter JoinMode = iota
	Round
	Bevel
)

func (j JoinMode) String() string {
	switch j {
	case Miter:
		return "Miter"
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode specifies how to draw caps on the ends of open figures.
type CapMode uint8

const (
	ButtCap CapMode = iota
	RoundCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case RoundCap:
		return "RoundCap"
	case SquareCap:
		return "SquareCap"
	default:
		return "<unknown CapMode>"
	}
}

type JoinOptions struct {
	MiterLimit fixed.Int26_6 // miter cutoff value for miter joins
	LineJoin   JoinMode
	LineCap    CapMode // applied to both line ends
}

type DashOptions struct {
	Dash       []float64 // values for the dash pattern (nil or empty for no dashes)
	DashOffset float64   // starting offset into the dash array
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line, in output space
	Join      JoinOptions
	Dash      DashOptions
}

// defaultJoin mirrors the initial SVG stroke style: miter joins with
// limit 4 and butt caps.
var defaultJoin = JoinOptions{
	MiterLimit: fToFixed(4),
	LineJoin:   Miter,
	LineCap:    ButtCap,
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// outPoint maps a user space point to an output space fixed point.
func outPoint(l Layout, p Point) fixed.Point26_6 {
	return toFixedP(l.TranslateX(p.X), l.TranslateY(p.Y))
}

// drawShape runs the fill and stroke passes over the geometry produced
// by emit. Both passes replay the exact same operations, fill first,
// as the Driver contract promises. Transparent paint and non-positive
// stroke widths skip their pass entirely.
func drawShape(d Driver, l Layout, fill Fill, stroke Stroke, nonZeroWinding bool, emit func(Drawer)) {
	lineWidth := l.TranslateScale(stroke.Width)
	if stroke.NonScaling {
		lineWidth = stroke.Width
	}
	willStroke := lineWidth > 0 && !stroke.Color.Transparent

	filler, stroker := d.SetupDrawers(!fill.Color.Transparent, willStroke)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(nonZeroWinding)
		emit(filler)
		filler.SetColor(fill.Color)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fToFixed(lineWidth),
			Join:      defaultJoin,
		})
		emit(stroker)
		stroker.SetColor(stroke.Color)
		stroker.Draw()
	}
}

// emitPoints flattens a point sequence into line segments, optionally
// closing the figure. Empty sequences emit nothing.
func emitPoints(d Drawer, l Layout, points []Point, closeLoop bool) {
	if len(points) == 0 {
		return
	}
	d.Start(outPoint(l, points[0]))
	for _, p := range points[1:] {
		d.Line(outPoint(l, p))
	}
	d.Stop(closeLoop)
}

// maxDx is the maximum radians a cubic splice is allowed to span
// in the ellipse parametric.
const maxDx float64 = math.Pi / 8

// emitEllipse approximates a full axis-aligned ellipse with a set of
// cubic bezier curves by the method of L. Maisonobe, "Drawing an
// elliptical arc using polylines, quadratic or cubic Bezier curves",
// 2003. Coordinates are in output space.
func emitEllipse(d Drawer, cx, cy, rx, ry float64) {
	startX, startY := cx+rx, cy
	d.Start(toFixedP(startX, startY))

	segs := int(2*math.Pi/maxDx) + 1
	dEta := 2 * math.Pi / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	lx, ly := startX, startY
	ldx, ldy := ellipsePrime(rx, ry, 0)
	for i := 1; i <= segs; i++ {
		eta := dEta * float64(i)
		var px, py float64
		if i == segs {
			px, py = startX, startY // make the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(rx, ry, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, eta)
		d.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	d.Stop(true)
}

// ellipsePrime gives the tangent vector of the parameterized ellipse
// with radii a, b at parameter eta.
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives the point of the parameterized ellipse with
// radii a, b and center cx, cy at parameter eta.
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
