package layout

import "github.com/ByLCY/glyphline/fontface"

// 该文件定义单行排版结果，供文档生成、渲染与调试 JSON 共用。

// GlyphPath 保存单个字形渲染后的路径数据以及渲染时使用的水平偏移（字体单位）。
// 创建后不再修改。
type GlyphPath struct {
	Char   string           `json:"char"`
	Glyph  fontface.GlyphID `json:"glyph"`
	Offset float32          `json:"offset"`
	Data   string           `json:"d"`
}

// LineLayout 表示一行文本的排版结果。
// Glyphs 按视觉顺序（从左到右）排列；Width 为所有保留字形的步进之和，
// Height 为各字形包围盒高度的最大值（没有包围盒时为 0）。
type LineLayout struct {
	Index   int         `json:"index"`
	Text    string      `json:"text"`
	Glyphs  []GlyphPath `json:"glyphs"`
	Width   float32     `json:"width"`
	Height  float32     `json:"height"`
	Missing []string    `json:"missing,omitempty"` // 字体中找不到而被丢弃的字符
}

// Paths 返回按顺序排列的路径数据。
func (l LineLayout) Paths() []string {
	paths := make([]string, len(l.Glyphs))
	for i, g := range l.Glyphs {
		paths[i] = g.Data
	}
	return paths
}

// Empty 报告该行是否没有任何可绘制的路径。
func (l LineLayout) Empty() bool { return len(l.Glyphs) == 0 }
