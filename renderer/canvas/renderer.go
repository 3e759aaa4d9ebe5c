package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/glyphline/document"
	"github.com/ByLCY/glyphline/layout"
	"github.com/ByLCY/glyphline/renderer"
)

// 空行或零高度的行仍输出一个最小页面，避免生成尺寸为 0 的 PDF。
const minPageSize = 1.0 // mm

// Renderer draws documents as vector PDF pages via github.com/tdewolff/canvas.
type Renderer struct {
	scale   float64 // 每个字体单位对应的毫米数
	fill    color.Color
	creator string
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	// Em 为一个 em 方框在页面上的尺寸，例如 12pt。
	Em layout.Length
	// UnitsPerEm 来自字体，用于把字体单位换算为毫米。
	UnitsPerEm float32
	// Fill 为字形填充色，nil 时为黑色。
	Fill    color.Color
	Creator string
}

// ParseFill parses a "#rrggbb" colour for Options.Fill.
func ParseFill(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("颜色 %q 格式不正确（应形如 #rrggbb）", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return nil, fmt.Errorf("颜色 %q 格式不正确（应形如 #rrggbb）: %w", s, err)
	}
	return canvas.Hex("#" + hex), nil
}

// NewRenderer creates a PDF renderer. Em and UnitsPerEm must be positive.
func NewRenderer(opts Options) (*Renderer, error) {
	scale := layout.EmScale(opts.Em, opts.UnitsPerEm)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return nil, fmt.Errorf("无效的 em 尺寸 %s（unitsPerEm=%g）", opts.Em, opts.UnitsPerEm)
	}
	fill := opts.Fill
	if fill == nil {
		fill = canvas.Black
	}
	return &Renderer{scale: scale, fill: fill, creator: opts.Creator}, nil
}

// Scale returns the millimetres per font unit used by the renderer.
func (r *Renderer) Scale() float64 { return r.scale }

// Render renders the document into a single page PDF.
// The page is the document size scaled to millimetres, with the baseline on
// the bottom edge so glyphs above the baseline fall inside the page.
func (r *Renderer) Render(doc *document.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	width := math.Max(float64(doc.Width)*r.scale, minPageSize)
	height := math.Max(float64(doc.Height)*r.scale, minPageSize)

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 路径数据本身就是 Y 轴向下
	ctx.SetFillColor(r.fill)
	ctx.SetStrokeColor(canvas.Transparent)
	for i, d := range doc.Paths {
		if d == "" {
			continue
		}
		p, err := canvas.ParseSVGPath(d)
		if err != nil {
			return nil, fmt.Errorf("解析第 %d 条路径失败: %w", i, err)
		}
		ctx.DrawPath(0, height, p.Scale(r.scale, r.scale))
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	writer.SetInfo("", "", "", "", r.creator)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}
