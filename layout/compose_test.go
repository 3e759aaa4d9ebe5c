package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ByLCY/glyphline/fontface"
	"github.com/ByLCY/glyphline/outline"
)

// glyph 构造一个宽 advance、高 height 的矩形字形。
func glyph(advance, height float32) fontface.Glyph {
	box := fontface.Box{XMin: 0, YMin: 0, XMax: advance, YMax: height}
	return fontface.Glyph{Advance: advance, Box: &box, Outline: fontface.Rect(box)}
}

func foxFace() *fontface.MemoryFace {
	return fontface.NewMemoryFace(1000, map[rune]fontface.Glyph{
		'f': glyph(5, 10),
		'o': glyph(8, 6),
		'x': glyph(7, 10),
		' ': {Advance: 4},
	})
}

// TestLayoutFox 覆盖 "fox" 场景：宽 20、高 10、三条路径，偏移依次为 0/5/13。
func TestLayoutFox(t *testing.T) {
	line := LayoutLine("fox", foxFace())
	if line.Width != 20 {
		t.Fatalf("期望宽度 20，实际 %g", line.Width)
	}
	if line.Height != 10 {
		t.Fatalf("期望高度 10，实际 %g", line.Height)
	}
	if len(line.Glyphs) != 3 {
		t.Fatalf("期望 3 条路径，实际 %d", len(line.Glyphs))
	}
	wantChars := []string{"f", "o", "x"}
	wantOffsets := []float32{0, 5, 13}
	for i, g := range line.Glyphs {
		if g.Char != wantChars[i] || g.Offset != wantOffsets[i] {
			t.Fatalf("第 %d 个字形期望 %s@%g，实际 %s@%g", i, wantChars[i], wantOffsets[i], g.Char, g.Offset)
		}
	}
	if got := line.Glyphs[1].Data; !strings.HasPrefix(got, "M 5 -0 ") {
		t.Fatalf("o 的路径应从偏移 5 开始，实际 %q", got)
	}
}

// TestOffsetAppliedBeforeAdvance 两个步进分别为 10 和 5 的字形：第二个位于 10 而不是 15。
func TestOffsetAppliedBeforeAdvance(t *testing.T) {
	face := fontface.NewMemoryFace(1000, map[rune]fontface.Glyph{
		'a': glyph(10, 3),
		'b': glyph(5, 3),
	})
	line := LayoutLine("ab", face)
	if len(line.Glyphs) != 2 {
		t.Fatalf("期望 2 条路径，实际 %d", len(line.Glyphs))
	}
	if line.Glyphs[1].Offset != 10 {
		t.Fatalf("第二个字形偏移期望 10，实际 %g", line.Glyphs[1].Offset)
	}
	if line.Width != 15 {
		t.Fatalf("期望宽度 15，实际 %g", line.Width)
	}
}

func TestUnmappedCharactersAreDropped(t *testing.T) {
	line := LayoutLine("?!", foxFace())
	if line.Width != 0 || line.Height != 0 || len(line.Glyphs) != 0 {
		t.Fatalf("全部缺失的行应为空，实际 %+v", line)
	}
	if strings.Join(line.Missing, "") != "?!" {
		t.Fatalf("缺失字符记录错误: %v", line.Missing)
	}

	// 缺失字符不占用宽度
	line = LayoutLine("f?o", foxFace())
	if line.Width != 13 || line.Glyphs[1].Offset != 5 {
		t.Fatalf("缺失字符不应占位，实际 width=%g offset=%g", line.Width, line.Glyphs[1].Offset)
	}
}

func TestEmptyLine(t *testing.T) {
	line := LayoutLine("", foxFace())
	if line.Width != 0 || line.Height != 0 || !line.Empty() {
		t.Fatalf("空行应为零尺寸，实际 %+v", line)
	}
	if line.Glyphs == nil {
		t.Fatalf("Glyphs 应为空切片而非 nil")
	}
}

// TestSpaceAdvancesWithoutPath 空格没有轮廓：不产生路径，但推进偏移。
func TestSpaceAdvancesWithoutPath(t *testing.T) {
	line := LayoutLine("f x", foxFace())
	if len(line.Glyphs) != 2 {
		t.Fatalf("期望 2 条路径，实际 %d", len(line.Glyphs))
	}
	if line.Glyphs[1].Offset != 9 {
		t.Fatalf("x 的偏移期望 9，实际 %g", line.Glyphs[1].Offset)
	}
	if line.Width != 16 {
		t.Fatalf("期望宽度 16，实际 %g", line.Width)
	}
}

// TestOffsetsInvariant 偏移单调不减，且末尾偏移等于行宽。
func TestOffsetsInvariant(t *testing.T) {
	line := LayoutLine("fox fox  xof", foxFace())
	var prev float32
	for i, g := range line.Glyphs {
		if g.Offset < prev {
			t.Fatalf("第 %d 个字形偏移递减: %g < %g", i, g.Offset, prev)
		}
		prev = g.Offset
	}
	var sum float32
	for _, r := range "fox fox  xof" {
		id, _ := foxFace().GlyphIndex(r)
		sum += foxFace().Advance(id)
	}
	if sum != line.Width {
		t.Fatalf("行宽应等于步进之和: %g != %g", line.Width, sum)
	}
	last := line.Glyphs[len(line.Glyphs)-1]
	if last.Offset+5 != line.Width {
		t.Fatalf("最后一个字形偏移加步进应等于行宽")
	}
}

// TestPathMatchesOutlineBuilder 行内路径与单独渲染同一轮廓的结果逐字节一致。
func TestPathMatchesOutlineBuilder(t *testing.T) {
	face := foxFace()
	line := LayoutLine("ox", face)
	id, _ := face.GlyphIndex('x')
	var rec outline.Recorder
	face.Outline(id, &rec)
	if want := outline.Render(rec.Events, 8); line.Glyphs[1].Data != want {
		t.Fatalf("路径不一致:\n got %q\nwant %q", line.Glyphs[1].Data, want)
	}
}

func TestLayoutLinesKeepsOrder(t *testing.T) {
	lines := LayoutLines([]string{"f", "", "ox"}, foxFace())
	if len(lines) != 3 {
		t.Fatalf("期望 3 行，实际 %d", len(lines))
	}
	for i, l := range lines {
		if l.Index != i {
			t.Fatalf("第 %d 行 Index=%d", i, l.Index)
		}
	}
	if lines[2].Width != 15 {
		t.Fatalf("第 3 行宽度期望 15，实际 %g", lines[2].Width)
	}
}

func TestWriteDebugJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.json")
	if err := WriteDebugJSON(LayoutLines([]string{"fox"}, foxFace()), path); err != nil {
		t.Fatalf("写入调试 JSON 失败: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取调试 JSON 失败: %v", err)
	}
	for _, want := range []string{`"lines"`, `"width": 20`, `"offset": 13`, `"char": "x"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("调试 JSON 缺少 %s:\n%s", want, data)
		}
	}
}
