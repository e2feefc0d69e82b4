package svgraster

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/MelcoInternational/simple-svg/svg"
)

func toPngBytes(t *testing.T, img image.Image) []byte {
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		t.Fatalf("can't encode the image: %s", err)
	}
	return b.Bytes()
}

func renderShapes(t *testing.T, layout svg.Layout, shapes ...svg.Shape) *image.RGBA {
	img, err := Render(layout, IgnoreErrorMode, shapes...)
	if err != nil {
		t.Fatalf("can't raster shapes: %s", err)
	}
	return img
}

func squareLayout() svg.Layout {
	return svg.NewLayout(svg.NewUniformDimensions(100), svg.TopLeft, 1, svg.Point{})
}

func TestRenderFilledCircle(t *testing.T) {
	c := svg.NewCircle(svg.Point{X: 50, Y: 50}, 40, svg.NewFill(svg.Red.Color()), svg.NoStroke())
	img := renderShapes(t, squareLayout(), c)

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("got canvas %v, want 100x100", b)
	}
	center := img.RGBAAt(50, 50)
	if center.R < 200 || center.A != 0xff {
		t.Fatalf("center pixel %v should be solid red", center)
	}
	if corner := img.RGBAAt(2, 2); corner.A != 0 {
		t.Fatalf("corner pixel %v should be untouched", corner)
	}
	if len(toPngBytes(t, img)) == 0 {
		t.Fatal("empty png")
	}
}

func TestRenderHonorsBottomLeftOrigin(t *testing.T) {
	layout := svg.NewLayout(svg.NewUniformDimensions(100), svg.BottomLeft, 1, svg.Point{})
	r := svg.NewRectangle(svg.Point{}, 100, 20, svg.NewFill(svg.Blue.Color()), svg.NoStroke())
	img := renderShapes(t, layout, r)

	if p := img.RGBAAt(50, 90); p.A != 0xff || p.B < 200 {
		t.Fatalf("pixel %v: the rect should cover the bottom rows", p)
	}
	if p := img.RGBAAt(50, 10); p.A != 0 {
		t.Fatalf("pixel %v: the top rows should stay untouched", p)
	}
}

func TestRenderStrokedLine(t *testing.T) {
	ln := svg.NewLine(svg.Point{X: 10, Y: 50}, svg.Point{X: 90, Y: 50},
		svg.NewStroke(4, svg.Red.Color(), false))
	img := renderShapes(t, squareLayout(), ln)

	if p := img.RGBAAt(50, 50); p.A != 0xff || p.R < 200 {
		t.Fatalf("pixel %v: the stroke should cross the middle", p)
	}
	if p := img.RGBAAt(50, 30); p.A != 0 {
		t.Fatalf("pixel %v: away from the stroke nothing is painted", p)
	}
}

func TestRenderTextModes(t *testing.T) {
	text := svg.NewText(svg.Point{X: 10, Y: 10}, "hi",
		svg.NewFill(svg.Black.Color()), svg.DefaultFont(), svg.NoStroke())

	if _, err := Render(svg.DefaultLayout(), StrictErrorMode, text); err == nil {
		t.Fatal("strict mode should report text shapes")
	}

	img, err := Render(svg.DefaultLayout(), IgnoreErrorMode, text)
	if err != nil {
		t.Fatalf("ignore mode should skip text shapes, got %s", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("got canvas %v, want the default 400x300", b)
	}
}

func TestRenderPathEvenOddHole(t *testing.T) {
	p := svg.NewPath(svg.NewFill(svg.Red.Color()), svg.NoStroke())
	p.Add(svg.Point{X: 10, Y: 10}, svg.Point{X: 90, Y: 10}, svg.Point{X: 90, Y: 90}, svg.Point{X: 10, Y: 90})
	p.StartNewSubPath()
	p.Add(svg.Point{X: 30, Y: 30}, svg.Point{X: 70, Y: 30}, svg.Point{X: 70, Y: 70}, svg.Point{X: 30, Y: 70})
	img := renderShapes(t, squareLayout(), p)

	if px := img.RGBAAt(20, 50); px.A != 0xff {
		t.Fatalf("pixel %v: the ring should be painted", px)
	}
	if px := img.RGBAAt(50, 50); px.A != 0 {
		t.Fatalf("pixel %v: the inner sub-path should punch a hole", px)
	}
}
