package fontface

import (
	"slices"

	"github.com/ByLCY/glyphline/outline"
)

// Glyph describes one glyph of a MemoryFace.
type Glyph struct {
	Advance float32
	// Box is optional; nil means the glyph has no bounding box.
	Box *Box
	// Outline is optional; an empty program means the glyph has no outline.
	Outline outline.Events
}

// MemoryFace is a Face backed by a rune → glyph table held in memory.
// Glyph ids are assigned in ascending rune order starting at 1.
type MemoryFace struct {
	Em     float32
	ids    map[rune]GlyphID
	glyphs []Glyph
}

var _ Face = (*MemoryFace)(nil)

// NewMemoryFace builds a face from the given glyph table.
func NewMemoryFace(em float32, table map[rune]Glyph) *MemoryFace {
	f := &MemoryFace{
		Em:     em,
		ids:    make(map[rune]GlyphID, len(table)),
		glyphs: []Glyph{{}}, // 0 为 .notdef
	}
	runes := make([]rune, 0, len(table))
	for r := range table {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	for _, r := range runes {
		f.ids[r] = GlyphID(len(f.glyphs))
		f.glyphs = append(f.glyphs, table[r])
	}
	return f
}

func (f *MemoryFace) GlyphIndex(r rune) (GlyphID, bool) {
	id, ok := f.ids[r]
	return id, ok
}

func (f *MemoryFace) Advance(id GlyphID) float32 {
	g, ok := f.glyph(id)
	if !ok || g.Advance < 0 {
		return 0
	}
	return g.Advance
}

func (f *MemoryFace) Bounds(id GlyphID) (Box, bool) {
	g, ok := f.glyph(id)
	if !ok || g.Box == nil {
		return Box{}, false
	}
	return *g.Box, true
}

func (f *MemoryFace) Outline(id GlyphID, p outline.Pather) bool {
	g, ok := f.glyph(id)
	if !ok || len(g.Outline) == 0 {
		return false
	}
	g.Outline.Replay(p)
	return true
}

func (f *MemoryFace) UnitsPerEm() float32 { return f.Em }

func (f *MemoryFace) glyph(id GlyphID) (Glyph, bool) {
	if id == 0 || int(id) >= len(f.glyphs) {
		return Glyph{}, false
	}
	return f.glyphs[id], true
}

// Rect returns a closed rectangular outline covering the box, handy for
// building MemoryFace glyphs.
func Rect(b Box) outline.Events {
	return outline.Events{
		outline.MoveTo(b.XMin, b.YMin),
		outline.LineTo(b.XMax, b.YMin),
		outline.LineTo(b.XMax, b.YMax),
		outline.LineTo(b.XMin, b.YMax),
		outline.Close(),
	}
}
