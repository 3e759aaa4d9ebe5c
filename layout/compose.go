package layout

import (
	"github.com/ByLCY/glyphline/fontface"
	"github.com/ByLCY/glyphline/outline"
)

// LayoutLine 将一行文本排成字形路径。
//
// 字体中没有对应字形的字符直接丢弃，既不产生路径也不占用宽度。
// 每个保留的字形先以当前偏移渲染轮廓，再把步进累加到偏移上；
// 没有轮廓的字形（如空格）不产生路径，但仍然推进偏移。
func LayoutLine(text string, face fontface.Face) LineLayout {
	line := LineLayout{Text: text, Glyphs: []GlyphPath{}}
	var offset float32
	for _, r := range text {
		id, ok := face.GlyphIndex(r)
		if !ok {
			line.Missing = append(line.Missing, string(r))
			continue
		}
		if box, ok := face.Bounds(id); ok {
			line.Height = max(line.Height, box.Height())
		}
		advance := max(face.Advance(id), 0)

		b := outline.NewBuilder(offset)
		if face.Outline(id, b) {
			line.Glyphs = append(line.Glyphs, GlyphPath{
				Char:   string(r),
				Glyph:  id,
				Offset: offset,
				Data:   b.String(),
			})
		}
		offset += advance
	}
	line.Width = offset
	return line
}

// LayoutLines 按输入顺序逐行排版，返回结果的 Index 即行号（从 0 开始）。
func LayoutLines(lines []string, face fontface.Face) []LineLayout {
	out := make([]LineLayout, 0, len(lines))
	for i, text := range lines {
		line := LayoutLine(text, face)
		line.Index = i
		out = append(out, line)
	}
	return out
}
