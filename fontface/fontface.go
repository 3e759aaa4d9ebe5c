// Package fontface defines the font capability the layout pipeline depends on.
//
// Implementations live in sub packages (gotext, sfnt). A Face is read-only once
// constructed and may be shared by every line without synchronization.
package fontface

import "github.com/ByLCY/glyphline/outline"

// GlyphID is an opaque handle into the glyph table of the Face that produced it.
type GlyphID uint32

// Box is a glyph bounding box in font units, Y up.
type Box struct {
	XMin float32 `json:"xMin"`
	YMin float32 `json:"yMin"`
	XMax float32 `json:"xMax"`
	YMax float32 `json:"yMax"`
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float32 { return nonNegative(b.XMax - b.XMin) }

// Height returns the vertical extent of the box, never negative.
func (b Box) Height() float32 { return nonNegative(b.YMax - b.YMin) }

func nonNegative(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Face exposes glyph lookup and outline iteration for one font.
type Face interface {
	// GlyphIndex maps a rune to its glyph; false if the font has no glyph for it.
	GlyphIndex(r rune) (GlyphID, bool)
	// Advance returns the horizontal advance, 0 when the font provides none.
	Advance(id GlyphID) float32
	// Bounds returns the glyph bounding box; false for glyphs without one.
	Bounds(id GlyphID) (Box, bool)
	// Outline feeds the glyph's drawing program to p. It feeds nothing and
	// returns false when the glyph has no outline.
	Outline(id GlyphID, p outline.Pather) bool
	// UnitsPerEm returns the size of the em square in font units.
	UnitsPerEm() float32
}

// ContourCloser wraps a Pather fed by a segment stream that has no explicit
// close operation. Starting a new contour, or calling Finish, first closes the
// contour that is still open.
type ContourCloser struct {
	p    outline.Pather
	open bool
}

var _ outline.Pather = (*ContourCloser)(nil)

// ClosingPather returns a ContourCloser writing to p.
func ClosingPather(p outline.Pather) *ContourCloser {
	return &ContourCloser{p: p}
}

func (w *ContourCloser) MoveTo(x, y float32) {
	w.Finish()
	w.p.MoveTo(x, y)
	w.open = true
}

func (w *ContourCloser) LineTo(x, y float32) { w.p.LineTo(x, y) }

func (w *ContourCloser) QuadTo(cx, cy, x, y float32) { w.p.QuadTo(cx, cy, x, y) }

func (w *ContourCloser) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	w.p.CubeTo(c1x, c1y, c2x, c2y, x, y)
}

func (w *ContourCloser) Close() {
	w.p.Close()
	w.open = false
}

// Finish closes the open contour, if any.
func (w *ContourCloser) Finish() {
	if w.open {
		w.Close()
	}
}
