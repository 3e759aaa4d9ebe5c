// Package svgrenderer writes documents as standalone SVG files.
package svgrenderer

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/ByLCY/glyphline/document"
	"github.com/ByLCY/glyphline/renderer"
)

const mediaType = "image/svg+xml"

// Renderer produces the SVG wire format of a document.
type Renderer struct {
	minifier *minify.M
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the SVG renderer.
type Options struct {
	// Minify 通过 tdewolff/minify 压缩输出；会改写路径数据的数值精度与空白，默认关闭。
	Minify bool
	// Precision 为压缩时保留的有效数字位数，0 表示不限制。
	Precision int
}

// NewRenderer creates an SVG renderer.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{}
	if opts.Minify {
		m := minify.New()
		m.Add(mediaType, &svg.Minifier{Precision: opts.Precision})
		r.minifier = m
	}
	return r
}

// Render returns the SVG bytes, minified when enabled.
func (r *Renderer) Render(doc *document.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	data, err := doc.MarshalSVG()
	if err != nil {
		return nil, err
	}
	if r.minifier == nil {
		return data, nil
	}
	out, err := r.minifier.Bytes(mediaType, data)
	if err != nil {
		return nil, fmt.Errorf("压缩 SVG 失败: %w", err)
	}
	return out, nil
}
