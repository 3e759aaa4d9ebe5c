package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// 输出文件名模板的语法：<前缀>{}<后缀>.<扩展名>
// 前缀可以包含点号，后缀不可以；{} 必须且只能出现一次。

var (
	templateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Placeholder", Pattern: `\{\}`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Text", Pattern: `[^{}.]+`},
	})

	templateParser = participle.MustBuild[Template](
		participle.Lexer(templateLexer),
	)
)

// Template is the parsed form of an output file name such as "line_{}.svg".
type Template struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Prefix string         `parser:"@( Text | Dot )*"`
	Suffix string         `parser:"Placeholder @Text?"`
	Ext    string         `parser:"Dot @Text"`
}

// Numbered returns the template used when only a directory is given: "{}.<ext>".
func Numbered(ext string) *Template {
	return &Template{Ext: ext}
}

// Name substitutes the line index into the template.
func (t *Template) Name(index int) string {
	var b strings.Builder
	b.WriteString(t.Prefix)
	b.WriteString(strconv.Itoa(index))
	b.WriteString(t.Suffix)
	b.WriteByte('.')
	b.WriteString(t.Ext)
	return b.String()
}

// String returns the template in its source form.
func (t *Template) String() string {
	return t.Prefix + "{}" + t.Suffix + "." + t.Ext
}

// ParseTemplate parses an output file name template.
func ParseTemplate(name string) (*Template, error) {
	tpl, err := templateParser.ParseString("", name)
	if err != nil {
		return nil, fmt.Errorf("输出文件名 %q 格式不正确（应形如 line_{}.svg）: %w", name, err)
	}
	tpl.Ext = strings.ToLower(tpl.Ext)
	return tpl, nil
}
