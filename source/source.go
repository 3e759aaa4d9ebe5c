// Package source reads the input text and splits it into lines.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ByLCY/glyphline/binding"
)

// Stdin 作为路径时表示从标准输入读取。
const Stdin = "--"

// Options 控制文本读取。
type Options struct {
	// Encoding 是 IANA 字符集名称，空值或 UTF-8 表示不转码。
	Encoding string
	// NFC 为 true 时在分行前做 NFC 规范化。
	NFC bool
	// Data 非空时用于替换各行中的 ${...} 占位符。
	Data any
}

// Read 读取 path（为 "--" 时读取 stdin）并返回按行拆分的文本。
func Read(path string, stdin io.Reader, opts Options) ([]string, error) {
	name := path
	var r io.Reader
	if path == Stdin {
		if stdin == nil {
			return nil, fmt.Errorf("标准输入不可用")
		}
		name = "标准输入"
		r = stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("无法打开文本文件 %s: %w", path, err)
		}
		defer file.Close()
		r = file
	}
	return Decode(name, r, opts)
}

// Decode 从 r 读取全部文本并按 opts 处理，name 仅用于错误信息。
func Decode(name string, r io.Reader, opts Options) ([]string, error) {
	r, err := decoder(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取 %s 失败: %w", name, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s 不是合法的 UTF-8 文本", name)
	}
	if opts.NFC {
		raw = norm.NFC.Bytes(raw)
	}

	lines := Split(raw)
	if opts.Data != nil {
		lines = binding.InterpolateLines(lines, opts.Data)
	}
	return lines, nil
}

// Split 按 \n 拆分文本，去掉行尾的 \r；末尾换行不会产生额外的空行。
// 行长不设上限。
func Split(text []byte) []string {
	lines := []string{}
	if len(text) == 0 {
		return lines
	}
	parts := bytes.Split(text, []byte{'\n'})
	if len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	for _, part := range parts {
		lines = append(lines, string(bytes.TrimSuffix(part, []byte{'\r'})))
	}
	return lines
}

func decoder(r io.Reader, encoding string) (io.Reader, error) {
	encoding = strings.TrimSpace(encoding)
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("未知的文本编码 %s: %w", encoding, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("不支持的文本编码 %s", encoding)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
