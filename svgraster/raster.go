// Implements a raster backend painting composed shapes onto an
// image, by wrapping rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/color"
	"log"

	"github.com/MelcoInternational/simple-svg/svg"
	"github.com/srwiley/rasterx"
)

// ErrorMode decides how Render reacts to shapes it cannot paint.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported shapes silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported shapes and logs them.
	WarnErrorMode
	// StrictErrorMode aborts rendering on the first unsupported shape.
	StrictErrorMode
)

var _ svg.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer implements svg.Driver on top of separate rasterx filler
// and dasher instances, to avoid shared state between the two passes.
type Renderer struct {
	filler fillDrawer
	dasher strokeDrawer
}

// NewRenderer returns a renderer painting on the given scanner. In
// addition to rasterizing lines like a Scanner, it can also rasterize
// quadratic and cubic bezier curves. The scanner must not be nil.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		filler: fillDrawer{rasterx.NewFiller(width, height, scanner)},
		dasher: strokeDrawer{rasterx.NewDasher(width, height, scanner)},
	}
}

// SetupDrawers hands out the fill and stroke painters for one shape,
// nil for the passes the shape does not need.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svg.Filler, svg.Stroker) {
	var f svg.Filler
	var s svg.Stroker
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.dasher
	}
	return f, s
}

// Render paints the shapes onto a fresh RGBA image sized from the
// layout canvas, using a ScannerGV instance. Text shapes need font
// shaping and cannot be painted; mode decides whether they are
// skipped, logged or reported as an error.
func Render(layout svg.Layout, mode ErrorMode, shapes ...svg.Shape) (*image.RGBA, error) {
	w, h := int(layout.Dimensions.Width), int(layout.Dimensions.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	for _, shape := range shapes {
		if _, isText := shape.(*svg.Text); isText {
			errStr := "Cannot raster text shapes"
			switch mode {
			case StrictErrorMode:
				return nil, errors.New(errStr)
			case WarnErrorMode:
				log.Println(errStr)
			}
			continue
		}
		shape.DrawTo(renderer, layout)
	}
	return img, nil
}

// fillDrawer adapts rasterx.Filler to svg.Filler.
type fillDrawer struct {
	*rasterx.Filler
}

func (f fillDrawer) SetColor(c svg.Color) {
	f.Filler.Scanner.SetColor(rasterColor(c))
}

// strokeDrawer adapts rasterx.Dasher to svg.Stroker.
type strokeDrawer struct {
	*rasterx.Dasher
}

func (s strokeDrawer) SetColor(c svg.Color) {
	s.Dasher.Scanner.SetColor(rasterColor(c))
}

func (s strokeDrawer) SetStrokeOptions(options svg.StrokeOptions) {
	s.Dasher.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[options.Join.LineCap],
		capToFunc[options.Join.LineCap], rasterx.RoundGap,
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svg.Miter: rasterx.Miter,
		svg.Round: rasterx.Round,
		svg.Bevel: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		svg.ButtCap:   rasterx.ButtCap,
		svg.RoundCap:  rasterx.RoundCap,
		svg.SquareCap: rasterx.SquareCap,
	}
)

func rasterColor(c svg.Color) color.Color {
	if c.Transparent {
		return color.NRGBA{}
	}
	return color.NRGBA{R: uint8(c.Red), G: uint8(c.Green), B: uint8(c.Blue), A: 0xff}
}
