package svg

// Shape is the capability set every drawable element provides:
// markup serialization, in-place translation, bounding geometry and
// flattening into a draw Driver.
type Shape interface {
	// ToSVG returns the markup fragment of the shape, in user space
	// coordinates.
	ToSVG() string

	// Offset translates the shape geometry in place.
	Offset(delta Point)

	// BoundingRect returns the smallest rect around the shape
	// geometry. Paint attributes take no part in it.
	BoundingRect() Rect

	// DrawTo flattens the shape into the driver, mapping every
	// coordinate through the layout.
	DrawTo(d Driver, l Layout)
}

// Circle is centered on a point and sized by its diameter.
type Circle struct {
	Center Point
	Radius float64
	Fill   Fill
	Stroke Stroke
}

func NewCircle(center Point, diameter float64, fill Fill, stroke Stroke) *Circle {
	return &Circle{Center: center, Radius: diameter / 2, Fill: fill, Stroke: stroke}
}

func (c *Circle) ToSVG() string {
	return elemStart("circle") +
		attribute("cx", ftoa(c.Center.X)) +
		attribute("cy", ftoa(c.Center.Y)) +
		attribute("r", ftoa(c.Radius)) +
		c.Fill.ToSVG() + c.Stroke.ToSVG() + emptyElemEnd
}

func (c *Circle) Offset(delta Point) {
	c.Center.X += delta.X
	c.Center.Y += delta.Y
}

func (c *Circle) BoundingRect() Rect {
	return NewRect(Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		c.Radius*2, c.Radius*2)
}

func (c *Circle) DrawTo(d Driver, l Layout) {
	drawShape(d, l, c.Fill, c.Stroke, true, func(dw Drawer) {
		emitEllipse(dw, l.TranslateX(c.Center.X), l.TranslateY(c.Center.Y),
			l.TranslateScale(c.Radius), l.TranslateScale(c.Radius))
	})
}

// Ellipse is centered on a point and sized by its full width and
// height.
type Ellipse struct {
	Center       Point
	RadiusWidth  float64
	RadiusHeight float64
	Fill         Fill
	Stroke       Stroke
}

func NewEllipse(center Point, width, height float64, fill Fill, stroke Stroke) *Ellipse {
	return &Ellipse{
		Center:       center,
		RadiusWidth:  width / 2,
		RadiusHeight: height / 2,
		Fill:         fill,
		Stroke:       stroke,
	}
}

func (e *Ellipse) ToSVG() string {
	return elemStart("ellipse") +
		attribute("cx", ftoa(e.Center.X)) +
		attribute("cy", ftoa(e.Center.Y)) +
		attribute("rx", ftoa(e.RadiusWidth)) +
		attribute("ry", ftoa(e.RadiusHeight)) +
		e.Fill.ToSVG() + e.Stroke.ToSVG() + emptyElemEnd
}

func (e *Ellipse) Offset(delta Point) {
	e.Center.X += delta.X
	e.Center.Y += delta.Y
}

func (e *Ellipse) BoundingRect() Rect {
	return NewRect(Point{X: e.Center.X - e.RadiusWidth, Y: e.Center.Y - e.RadiusHeight},
		e.RadiusWidth*2, e.RadiusHeight*2)
}

func (e *Ellipse) DrawTo(d Driver, l Layout) {
	drawShape(d, l, e.Fill, e.Stroke, true, func(dw Drawer) {
		emitEllipse(dw, l.TranslateX(e.Center.X), l.TranslateY(e.Center.Y),
			l.TranslateScale(e.RadiusWidth), l.TranslateScale(e.RadiusHeight))
	})
}

// Rectangle is anchored on its edge point and spans width and height
// away from it.
type Rectangle struct {
	Edge   Point
	Width  float64
	Height float64
	Fill   Fill
	Stroke Stroke
}

func NewRectangle(edge Point, width, height float64, fill Fill, stroke Stroke) *Rectangle {
	return &Rectangle{Edge: edge, Width: width, Height: height, Fill: fill, Stroke: stroke}
}

func (r *Rectangle) ToSVG() string {
	return elemStart("rect") +
		attribute("x", ftoa(r.Edge.X)) +
		attribute("y", ftoa(r.Edge.Y)) +
		attribute("width", ftoa(r.Width)) +
		attribute("height", ftoa(r.Height)) +
		r.Fill.ToSVG() + r.Stroke.ToSVG() + emptyElemEnd
}

func (r *Rectangle) Offset(delta Point) {
	r.Edge.X += delta.X
	r.Edge.Y += delta.Y
}

func (r *Rectangle) BoundingRect() Rect {
	return NewRect(r.Edge, r.Width, r.Height)
}

func (r *Rectangle) DrawTo(d Driver, l Layout) {
	corners := []Point{
		r.Edge,
		{X: r.Edge.X + r.Width, Y: r.Edge.Y},
		{X: r.Edge.X + r.Width, Y: r.Edge.Y + r.Height},
		{X: r.Edge.X, Y: r.Edge.Y + r.Height},
	}
	drawShape(d, l, r.Fill, r.Stroke, true, func(dw Drawer) {
		emitPoints(dw, l, corners, true)
	})
}

// Line is a straight stroke between two points. It has no interior,
// so it carries no fill.
type Line struct {
	Start  Point
	End    Point
	Stroke Stroke
}

func NewLine(start, end Point, stroke Stroke) *Line {
	return &Line{Start: start, End: end, Stroke: stroke}
}

func (ln *Line) ToSVG() string {
	return elemStart("line") +
		attribute("x1", ftoa(ln.Start.X)) +
		attribute("y1", ftoa(ln.Start.Y)) +
		attribute("x2", ftoa(ln.End.X)) +
		attribute("y2", ftoa(ln.End.Y)) +
		ln.Stroke.ToSVG() + emptyElemEnd
}

func (ln *Line) Offset(delta Point) {
	ln.Start.X += delta.X
	ln.Start.Y += delta.Y
	ln.End.X += delta.X
	ln.End.Y += delta.Y
}

func (ln *Line) BoundingRect() Rect {
	var r Rect
	r.Include(ln.Start)
	r.Include(ln.End)
	return r
}

func (ln *Line) DrawTo(d Driver, l Layout) {
	drawShape(d, l, NewFill(Transparent.Color()), ln.Stroke, true, func(dw Drawer) {
		emitPoints(dw, l, []Point{ln.Start, ln.End}, false)
	})
}

// Polygon is a closed point sequence.
type Polygon struct {
	Points []Point
	Fill   Fill
	Stroke Stroke
}

func NewPolygon(fill Fill, stroke Stroke, points ...Point) *Polygon {
	return &Polygon{Points: points, Fill: fill, Stroke: stroke}
}

// Add appends points to the sequence.
func (p *Polygon) Add(points ...Point) {
	p.Points = append(p.Points, points...)
}

func (p *Polygon) ToSVG() string {
	return elemStart("polygon") +
		pointsAttribute(p.Points) +
		p.Fill.ToSVG() + p.Stroke.ToSVG() + emptyElemEnd
}

func (p *Polygon) Offset(delta Point) {
	offsetPoints(p.Points, delta)
}

func (p *Polygon) BoundingRect() Rect {
	return pointsRect(p.Points)
}

func (p *Polygon) DrawTo(d Driver, l Layout) {
	drawShape(d, l, p.Fill, p.Stroke, true, func(dw Drawer) {
		emitPoints(dw, l, p.Points, true)
	})
}

// Polyline is an open point sequence.
type Polyline struct {
	Points []Point
	Fill   Fill
	Stroke Stroke
}

func NewPolyline(fill Fill, stroke Stroke, points ...Point) *Polyline {
	return &Polyline{Points: points, Fill: fill, Stroke: stroke}
}

// Add appends points to the sequence.
func (p *Polyline) Add(points ...Point) {
	p.Points = append(p.Points, points...)
}

func (p *Polyline) ToSVG() string {
	return elemStart("polyline") +
		pointsAttribute(p.Points) +
		p.Fill.ToSVG() + p.Stroke.ToSVG() + emptyElemEnd
}

func (p *Polyline) Offset(delta Point) {
	offsetPoints(p.Points, delta)
}

func (p *Polyline) BoundingRect() Rect {
	return pointsRect(p.Points)
}

func (p *Polyline) DrawTo(d Driver, l Layout) {
	drawShape(d, l, p.Fill, p.Stroke, true, func(dw Drawer) {
		emitPoints(dw, l, p.Points, false)
	})
}

// Text places a content string at an origin point. The rendered
// extent is unknown to the model, so the bounding rect degenerates to
// the origin.
type Text struct {
	Origin  Point
	Content string
	Fill    Fill
	Stroke  Stroke
	Font    Font
}

func NewText(origin Point, content string, fill Fill, font Font, stroke Stroke) *Text {
	return &Text{Origin: origin, Content: content, Fill: fill, Stroke: stroke, Font: font}
}

func (t *Text) ToSVG() string {
	return elemStart("text") +
		attribute("x", ftoa(t.Origin.X)) +
		attribute("y", ftoa(t.Origin.Y)) +
		t.Fill.ToSVG() + t.Stroke.ToSVG() + t.Font.ToSVG() +
		">" + t.Content + elemEnd("text")
}

func (t *Text) Offset(delta Point) {
	t.Origin.X += delta.X
	t.Origin.Y += delta.Y
}

func (t *Text) BoundingRect() Rect {
	return NewRect(t.Origin, 0, 0)
}

// DrawTo emits nothing: glyph outlines need font shaping, which is
// left to the backends to report or skip.
func (t *Text) DrawTo(d Driver, l Layout) {}

// pointsAttribute renders the points attribute of polygons and
// polylines, one "x,y " pair per point.
func pointsAttribute(points []Point) string {
	value := ""
	for _, p := range points {
		value += ftoa(p.X) + "," + ftoa(p.Y) + " "
	}
	return "points=\"" + value + "\" "
}

func offsetPoints(points []Point, delta Point) {
	for i := range points {
		points[i].X += delta.X
		points[i].Y += delta.Y
	}
}

func pointsRect(points []Point) Rect {
	var r Rect
	for _, p := range points {
		r.Include(p)
	}
	return r
}
