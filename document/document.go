// Package document wraps a laid out line into a self-contained SVG document.
package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ByLCY/glyphline/layout"
	"github.com/ByLCY/glyphline/outline"
)

// Namespace is the SVG namespace written on the root element.
const Namespace = "http://www.w3.org/2000/svg"

// Document is one output document: the line's size plus one path per glyph,
// in visual order. It is written once and not modified afterwards.
type Document struct {
	Width  float32
	Height float32
	Paths  []string
}

// New builds the document for a laid out line.
func New(line layout.LineLayout) *Document {
	return &Document{
		Width:  line.Width,
		Height: line.Height,
		Paths:  line.Paths(),
	}
}

type svgRoot struct {
	XMLName xml.Name  `xml:"http://www.w3.org/2000/svg svg"`
	Width   string    `xml:"width,attr"`
	Height  string    `xml:"height,attr"`
	Paths   []svgPath `xml:"path"`
}

type svgPath struct {
	D string `xml:"d,attr"`
}

// WriteSVG writes the document: a root svg element carrying width and height
// and one path element per glyph carrying only its d attribute.
func (d *Document) WriteSVG(w io.Writer) error {
	root := svgRoot{
		Width:  outline.FormatNumber(d.Width),
		Height: outline.FormatNumber(d.Height),
		Paths:  make([]svgPath, len(d.Paths)),
	}
	for i, p := range d.Paths {
		root.Paths[i] = svgPath{D: p}
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("写入 SVG 失败: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("写入 SVG 失败: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// MarshalSVG returns the SVG bytes of the document.
func (d *Document) MarshalSVG() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
