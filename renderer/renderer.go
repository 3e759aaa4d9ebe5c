package renderer

import "github.com/ByLCY/glyphline/document"

// Renderer 将单个文档输出为最终文件内容，例如 SVG 或 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(doc *document.Document) ([]byte, error)
}
