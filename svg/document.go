// Provides a compact document model for composing SVG 1.1 images in
// memory and serializing them to markup, byte for byte stable across
// runs. Shapes are appended to a Document, which accumulates their
// markup and the bounding region used to size the root element.
// Backends such as svgraster can paint the same shapes onto a canvas.
package svg

import (
	"bufio"
	"os"
	"strings"
)

// Document accumulates serialized shapes and their bounding region.
// Appending is one way: shapes are serialized immediately and not
// retained, so mutating a shape after Append has no effect on the
// document.
type Document struct {
	fileName string
	layout   Layout
	region   Rect
	body     strings.Builder
}

func NewDocument(fileName string, layout Layout) *Document {
	return &Document{fileName: fileName, layout: layout}
}

// Layout returns the layout the document was created with.
func (doc *Document) Layout() Layout { return doc.layout }

// Region returns the union of the bounding rects of every appended
// shape.
func (doc *Document) Region() Rect { return doc.region }

// Append serializes the shape into the document body and grows the
// region by the shape bounds. It returns the document so calls chain.
func (doc *Document) Append(s Shape) *Document {
	doc.body.WriteString(s.ToSVG())
	doc.region.IncludeRect(s.BoundingRect())
	return doc
}

// ToSVG returns the complete document markup: XML declaration, SVG
// 1.1 doctype and the svg root sized and viewBoxed from the region.
func (doc *Document) ToSVG() string {
	return "<?xml " + attribute("version", "1.0") + attribute("standalone", "no") +
		"?>\n<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" " +
		"\"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n<svg " +
		attribute("width", ftoa(doc.region.Width())+"px") +
		attribute("height", ftoa(doc.region.Height())+"px") +
		attribute("xmlns", "http://www.w3.org/2000/svg") +
		attribute("viewBox",
			ftoa(doc.region.Min().X)+" "+ftoa(doc.region.Min().Y)+" "+
				ftoa(doc.region.Width())+" "+ftoa(doc.region.Height())) +
		attribute("version", "1.1") + ">\n" +
		doc.body.String() + elemEnd("svg")
}

// Save writes the document markup to its configured file path,
// creating or truncating the file.
func (doc *Document) Save() error {
	f, err := os.Create(doc.fileName)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(doc.ToSVG()); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
