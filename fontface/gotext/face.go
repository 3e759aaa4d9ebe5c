// Package gotextface implements fontface.Face on top of github.com/go-text/typesetting.
package gotextface

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/ByLCY/glyphline/fontface"
	"github.com/ByLCY/glyphline/outline"
)

// Face wraps a parsed OpenType/TrueType font.
type Face struct {
	// font.Face 内部缓存字形包围盒，非并发安全，这里统一加锁。
	mu   sync.Mutex
	face *font.Face
	upem float32
}

var _ fontface.Face = (*Face)(nil)

// Parse decodes an OpenType (.otf/.ttf) font file.
func Parse(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("字体数据为空")
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解析字体失败: %w", err)
	}
	return &Face{face: face, upem: float32(face.Upem())}, nil
}

// GlyphIndex looks r up in the cmap table. Glyph 0 (.notdef) counts as missing.
func (f *Face) GlyphIndex(r rune) (fontface.GlyphID, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return fontface.GlyphID(gid), true
}

func (f *Face) Advance(id fontface.GlyphID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv := f.face.HorizontalAdvance(font.GID(id))
	if adv < 0 {
		return 0
	}
	return adv
}

// Bounds converts the glyph extents (top-left origin, negative height) into a box.
// Glyphs with empty extents, such as spaces, have no box.
func (f *Face) Bounds(id fontface.GlyphID) (fontface.Box, bool) {
	f.mu.Lock()
	ext, ok := f.face.GlyphExtents(font.GID(id))
	f.mu.Unlock()
	if !ok || (ext.Width == 0 && ext.Height == 0) {
		return fontface.Box{}, false
	}
	box := fontface.Box{
		XMin: ext.XBearing,
		XMax: ext.XBearing + ext.Width,
		YMax: ext.YBearing,
		YMin: ext.YBearing + ext.Height,
	}
	if box.YMin > box.YMax {
		box.YMin, box.YMax = box.YMax, box.YMin
	}
	return box, true
}

// Outline feeds the glyph's vector outline. SVG and bitmap glyphs fall back to
// the outline stored alongside them, when there is one.
func (f *Face) Outline(id fontface.GlyphID, p outline.Pather) bool {
	f.mu.Lock()
	data := f.face.GlyphData(font.GID(id))
	f.mu.Unlock()

	var segments []ot.Segment
	switch g := data.(type) {
	case font.GlyphOutline:
		segments = g.Segments
	case font.GlyphSVG:
		segments = g.Outline.Segments
	case font.GlyphBitmap:
		if g.Outline != nil {
			segments = g.Outline.Segments
		}
	}
	if len(segments) == 0 {
		return false
	}
	emit(segments, p)
	return true
}

func (f *Face) UnitsPerEm() float32 { return f.upem }

// emit replays go-text segments. They carry no close operation, every contour
// is closed before the next MoveTo and after the last segment.
func emit(segments []ot.Segment, p outline.Pather) {
	w := fontface.ClosingPather(p)
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			w.MoveTo(a[0].X, a[0].Y)
		case ot.SegmentOpLineTo:
			w.LineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			w.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			w.CubeTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	w.Finish()
}
