// Package sink persists rendered documents, one file per input line.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/glyphline/dsl"
)

// 支持的输出格式（即文件扩展名）。
const (
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// Dir writes documents into a directory, naming them with a template.
type Dir struct {
	dir      string
	template *dsl.Template
}

// NewDir prepares the destination described by output.
//
// When output has an extension it must be .svg or .pdf; its base name is the
// file name template (e.g. "out/line_{}.svg") and its parent directory is
// created. Without an extension output is the directory itself and files are
// named "{}.svg".
func NewDir(output string) (*Dir, error) {
	if output == "" {
		return nil, fmt.Errorf("输出路径不能为空")
	}
	dir := output
	tpl := dsl.Numbered(FormatSVG)
	if ext := filepath.Ext(output); ext != "" {
		switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
		case FormatSVG, FormatPDF:
		default:
			return nil, fmt.Errorf("%s 不是支持的输出类型（仅支持 svg 与 pdf）", strings.TrimPrefix(ext, "."))
		}
		base := filepath.Base(output)
		parsed, err := dsl.ParseTemplate(base)
		if err != nil {
			return nil, err
		}
		tpl = parsed
		dir = filepath.Dir(output)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录 %s 失败: %w", dir, err)
	}
	return &Dir{dir: dir, template: tpl}, nil
}

// String returns the output pattern, e.g. "out/line_{}.svg".
func (d *Dir) String() string {
	return filepath.Join(d.dir, d.template.String())
}

// Format reports the output format, "svg" or "pdf".
func (d *Dir) Format() string { return d.template.Ext }

// Path returns the file path used for the given zero-based line index.
func (d *Dir) Path(index int) string {
	return filepath.Join(d.dir, d.template.Name(index))
}

// Write persists data for the given line index.
func (d *Dir) Write(index int, data []byte) error {
	path := d.Path(index)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("无法写入 %s: %w", path, err)
	}
	return nil
}
