// Builds simple line charts out of the core svg primitives. A chart
// is itself a Shape, so it can be appended to a Document or handed to
// a raster driver like any other element.
package svgchart

import (
	"github.com/MelcoInternational/simple-svg/svg"
)

// LineChart plots point series as margin-shifted polylines with
// vertex dots, closed off by an axis pair sized to the data.
type LineChart struct {
	axisStroke svg.Stroke
	margin     svg.Dimensions
	polylines  []svg.Polyline
}

var _ svg.Shape = (*LineChart)(nil)

// DefaultAxisStroke returns the half-unit purple stroke charts use
// unless told otherwise.
func DefaultAxisStroke() svg.Stroke {
	return svg.NewStroke(0.5, svg.Purple.Color(), false)
}

func NewLineChart(margin svg.Dimensions, axisStroke svg.Stroke) *LineChart {
	return &LineChart{margin: margin, axisStroke: axisStroke}
}

// Add records a data series, copying its points. Polylines without
// points are ignored. It returns the chart so calls chain.
func (c *LineChart) Add(polyline svg.Polyline) *LineChart {
	if len(polyline.Points) == 0 {
		return c
	}
	pl := svg.Polyline{Fill: polyline.Fill, Stroke: polyline.Stroke}
	pl.Add(polyline.Points...)
	c.polylines = append(c.polylines, pl)
	return c
}

// ToSVG renders every data series followed by the axis. An empty
// chart renders as the empty string.
func (c *LineChart) ToSVG() string {
	out := ""
	for _, s := range c.shapes() {
		out += s.ToSVG()
	}
	return out
}

func (c *LineChart) Offset(delta svg.Point) {
	for i := range c.polylines {
		c.polylines[i].Offset(delta)
	}
}

// BoundingRect covers every emitted shape, vertex dots and axis
// included.
func (c *LineChart) BoundingRect() svg.Rect {
	var r svg.Rect
	for _, s := range c.shapes() {
		r.IncludeRect(s.BoundingRect())
	}
	return r
}

func (c *LineChart) DrawTo(d svg.Driver, l svg.Layout) {
	for _, s := range c.shapes() {
		s.DrawTo(d, l)
	}
}

// shapes builds the drawable parts of the chart: each polyline
// shifted by the margin and followed by its vertex dots, then the
// axis. An empty chart has no parts.
func (c *LineChart) shapes() []svg.Shape {
	dims, ok := c.dataDimensions()
	if !ok {
		return nil
	}
	diameter := dims.Height / 30

	var out []svg.Shape
	for _, pl := range c.polylines {
		shifted := svg.NewPolyline(pl.Fill, pl.Stroke)
		shifted.Add(pl.Points...)
		shifted.Offset(svg.Point{X: c.margin.Width, Y: c.margin.Height})
		out = append(out, shifted)
		for _, pt := range shifted.Points {
			out = append(out, svg.NewCircle(pt, diameter, svg.NewFill(svg.Black.Color()), svg.NoStroke()))
		}
	}
	return append(out, c.axis(dims))
}

// axis builds the two-segment axis polyline, 10% wider and higher
// than the data points.
func (c *LineChart) axis(dims svg.Dimensions) *svg.Polyline {
	width := dims.Width * 1.1
	height := dims.Height * 1.1

	axis := svg.NewPolyline(svg.NewFill(svg.Transparent.Color()), c.axisStroke)
	axis.Add(
		svg.Point{X: c.margin.Width, Y: c.margin.Height + height},
		svg.Point{X: c.margin.Width, Y: c.margin.Height},
		svg.Point{X: c.margin.Width + width, Y: c.margin.Height},
	)
	return axis
}

// dataDimensions returns the extent of the raw data points across all
// series. It reports false when the chart holds no series.
func (c *LineChart) dataDimensions() (svg.Dimensions, bool) {
	if len(c.polylines) == 0 {
		return svg.Dimensions{}, false
	}
	min, _ := svg.MinPoint(c.polylines[0].Points)
	max, _ := svg.MaxPoint(c.polylines[0].Points)
	for _, pl := range c.polylines[1:] {
		plMin, _ := svg.MinPoint(pl.Points)
		plMax, _ := svg.MaxPoint(pl.Points)
		if plMin.X < min.X {
			min.X = plMin.X
		}
		if plMin.Y < min.Y {
			min.Y = plMin.Y
		}
		if plMax.X > max.X {
			max.X = plMax.X
		}
		if plMax.Y > max.Y {
			max.Y = plMax.Y
		}
	}
	return svg.NewDimensions(max.X-min.X, max.Y-min.Y), true
}
