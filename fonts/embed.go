package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// 内置字体来自 golang.org/x/image/font/gofont。
var builtin = map[string][]byte{
	"goregular":         goregular.TTF,
	"gobold":            gobold.TTF,
	"gobolditalic":      gobolditalic.TTF,
	"goitalic":          goitalic.TTF,
	"gomedium":          gomedium.TTF,
	"gomediumitalic":    gomediumitalic.TTF,
	"gomono":            gomono.TTF,
	"gomonobold":        gomonobold.TTF,
	"gomonobolditalic":  gomonobolditalic.TTF,
	"gomonoitalic":      gomonoitalic.TTF,
	"gosmallcaps":       gosmallcaps.TTF,
	"gosmallcapsitalic": gosmallcapsitalic.TTF,
}

// systemLookup 按文件名查找系统字体，测试中可替换。
var systemLookup = findfont.Find

// Load 返回字体的字节数据。src 可以写成：
//   - "builtin:goregular"（或 "built-in:"），使用内置字体；
//   - 文件路径，直接从磁盘读取；
//   - 字体文件名（如 "DejaVuSans.ttf"），在系统字体目录中查找。
func Load(src string) ([]byte, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("未指定字体")
	}
	if name, ok := builtinName(src); ok {
		data, found := builtin[strings.ToLower(name)]
		if !found {
			return nil, fmt.Errorf("找不到内置字体 %s（可用: %s）", name, strings.Join(Names(), ", "))
		}
		return data, nil
	}

	data, err := os.ReadFile(src)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("无法打开字体 %s: %w", src, err)
	}
	// 只有裸文件名才去系统字体目录中查找
	if filepath.Base(src) != src {
		return nil, fmt.Errorf("无法打开字体 %s: %w", src, err)
	}
	path, ferr := systemLookup(src)
	if ferr != nil {
		return nil, fmt.Errorf("无法打开字体 %s: 既不是文件也不是系统字体: %w", src, ferr)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取系统字体 %s 失败: %w", path, err)
	}
	return data, nil
}

// Names 返回排序后的内置字体名。
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func builtinName(src string) (string, bool) {
	for _, prefix := range []string{"builtin:", "built-in:"} {
		if strings.HasPrefix(src, prefix) {
			return strings.TrimPrefix(src, prefix), true
		}
	}
	return "", false
}
