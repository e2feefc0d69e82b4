package svg

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocumentToSVG(t *testing.T) {
	doc := NewDocument("my_svg.svg", NewLayout(NewUniformDimensions(100), TopLeft, 1, Point{}))
	doc.Append(NewCircle(Point{X: 50, Y: 50}, 20, NewFill(Red.Color()), NoStroke()))

	want := "<?xml version=\"1.0\" standalone=\"no\" ?>\n" +
		"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n" +
		"<svg width=\"20px\" height=\"20px\" xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"40 40 20 20\" version=\"1.1\" >\n" +
		"\t<circle cx=\"50\" cy=\"50\" r=\"10\" fill=\"rgb(255,0,0)\" />\n" +
		"</svg>\n"
	if got := doc.ToSVG(); got != want {
		t.Fatalf("got document\n%s\nwant\n%s", got, want)
	}
}

func TestEmptyDocument(t *testing.T) {
	layout := DefaultLayout()
	doc := NewDocument("empty.svg", layout)
	if doc.Layout() != layout {
		t.Fatal("layout accessor should return the construction layout")
	}
	if !doc.Region().IsEmpty() {
		t.Fatal("fresh document should have an empty region")
	}

	got := doc.ToSVG()
	for _, fragment := range []string{
		"width=\"0px\" ", "height=\"0px\" ", "viewBox=\"0 0 0 0\" ",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("document %q misses %q", got, fragment)
		}
	}
}

func TestDocumentRegionUnion(t *testing.T) {
	r := NewRectangle(Point{X: -5, Y: 40}, 30, 20, NewFill(Blue.Color()), NoStroke())
	c := NewCircle(Point{X: 50, Y: 70}, 20, NewFill(Red.Color()), NoStroke())

	first := NewDocument("a.svg", DefaultLayout()).Append(r).Append(c)
	second := NewDocument("b.svg", DefaultLayout()).Append(c).Append(r)
	if first.Region() != second.Region() {
		t.Fatalf("region depends on append order: %v vs %v", first.Region(), second.Region())
	}

	region := first.Region()
	if min := region.Min(); min.X != -5 || min.Y != 40 {
		t.Fatalf("got min %v, want (-5, 40)", min)
	}
	if max := region.Max(); max.X != 60 || max.Y != 80 {
		t.Fatalf("got max %v, want (60, 80)", max)
	}
}

func TestDocumentDoesNotRetainShapes(t *testing.T) {
	c := NewCircle(Point{X: 50, Y: 50}, 20, NewFill(Red.Color()), NoStroke())
	doc := NewDocument("a.svg", DefaultLayout()).Append(c)
	before := doc.ToSVG()

	c.Offset(Point{X: 1000, Y: 1000})
	if after := doc.ToSVG(); after != before {
		t.Fatal("mutating an appended shape changed the document")
	}
}

func TestDocumentIsWellFormed(t *testing.T) {
	doc := NewDocument("a.svg", DefaultLayout())
	doc.Append(NewCircle(Point{X: 50, Y: 50}, 20, NewFill(Red.Color()), NewStroke(2, Black.Color(), false)))
	doc.Append(NewText(Point{X: 10, Y: 10}, "label", NewFill(Black.Color()), DefaultFont(), NoStroke()))
	doc.Append(NewPolyline(NewFill(Transparent.Color()), NewStroke(1, Blue.Color(), false),
		Point{X: 0, Y: 0}, Point{X: 5, Y: 5}))

	dec := xml.NewDecoder(strings.NewReader(doc.ToSVG()))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid markup: %s", err)
		}
	}
}

func TestDocumentSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	doc := NewDocument(path, DefaultLayout())
	doc.Append(NewCircle(Point{X: 50, Y: 50}, 20, NewFill(Red.Color()), NoStroke()))
	if err := doc.Save(); err != nil {
		t.Fatalf("save failed: %s", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("can't read the saved file: %s", err)
	}
	if string(content) != doc.ToSVG() {
		t.Fatal("saved file differs from the serialized document")
	}
}

func TestDocumentSaveBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.svg")
	if err := NewDocument(path, DefaultLayout()).Save(); err == nil {
		t.Fatal("saving into a missing directory should fail")
	}
}
