// Package sfntface implements fontface.Face on top of golang.org/x/image/font/sfnt.
package sfntface

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/ByLCY/glyphline/fontface"
	"github.com/ByLCY/glyphline/outline"
)

// Face wraps a parsed sfnt font.
//
// Glyphs are loaded with ppem equal to the font's units per em, so every
// 26.6 fixed point value is a plain font unit count. sfnt reports Y down;
// Face negates it back so callers see the font's native Y-up space.
//
// The output is approximate for TrueType (glyf) fonts: sfnt computes implied
// on-curve midpoints with integer division in font units, so a point at n.5
// arrives truncated toward zero. Use the gotext backend for exact path data.
type Face struct {
	font *sfnt.Font
	ppem fixed.Int26_6
	upem float32
	bufs sync.Pool
}

var _ fontface.Face = (*Face)(nil)

// Parse decodes a TrueType or OpenType font file.
func Parse(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("解析字体失败: %w", err)
	}
	upem := f.UnitsPerEm()
	if upem <= 0 {
		return nil, fmt.Errorf("字体 unitsPerEm 无效: %d", upem)
	}
	face := &Face{
		font: f,
		ppem: fixed.Int26_6(upem) << 6,
		upem: float32(upem),
	}
	face.bufs.New = func() any { return new(sfnt.Buffer) }
	return face, nil
}

func (f *Face) GlyphIndex(r rune) (fontface.GlyphID, bool) {
	buf := f.buffer()
	defer f.bufs.Put(buf)
	gid, err := f.font.GlyphIndex(buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return fontface.GlyphID(gid), true
}

func (f *Face) Advance(id fontface.GlyphID) float32 {
	buf := f.buffer()
	defer f.bufs.Put(buf)
	adv, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(id), f.ppem, font.HintingNone)
	if err != nil || adv < 0 {
		return 0
	}
	return units(adv)
}

func (f *Face) Bounds(id fontface.GlyphID) (fontface.Box, bool) {
	buf := f.buffer()
	defer f.bufs.Put(buf)
	b, _, err := f.font.GlyphBounds(buf, sfnt.GlyphIndex(id), f.ppem, font.HintingNone)
	if err != nil || b.Empty() {
		return fontface.Box{}, false
	}
	return fontface.Box{
		XMin: units(b.Min.X),
		XMax: units(b.Max.X),
		YMin: units(-b.Max.Y),
		YMax: units(-b.Min.Y),
	}, true
}

// Outline feeds the glyph's segments. Colored glyphs (bitmap or SVG emoji)
// are reported as having no outline.
func (f *Face) Outline(id fontface.GlyphID, p outline.Pather) bool {
	buf := f.buffer()
	defer f.bufs.Put(buf)
	segments, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(id), f.ppem, nil)
	if err != nil || len(segments) == 0 {
		return false
	}
	w := fontface.ClosingPather(p)
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			w.MoveTo(units(a[0].X), units(-a[0].Y))
		case sfnt.SegmentOpLineTo:
			w.LineTo(units(a[0].X), units(-a[0].Y))
		case sfnt.SegmentOpQuadTo:
			w.QuadTo(units(a[0].X), units(-a[0].Y), units(a[1].X), units(-a[1].Y))
		case sfnt.SegmentOpCubeTo:
			w.CubeTo(units(a[0].X), units(-a[0].Y), units(a[1].X), units(-a[1].Y), units(a[2].X), units(-a[2].Y))
		}
	}
	w.Finish()
	return true
}

func (f *Face) UnitsPerEm() float32 { return f.upem }

func (f *Face) buffer() *sfnt.Buffer {
	return f.bufs.Get().(*sfnt.Buffer)
}

// units converts a 26.6 fixed point value into float font units.
func units(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
