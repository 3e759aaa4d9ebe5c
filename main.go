package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/glyphline/document"
	"github.com/ByLCY/glyphline/fontface"
	gotextface "github.com/ByLCY/glyphline/fontface/gotext"
	sfntface "github.com/ByLCY/glyphline/fontface/sfnt"
	"github.com/ByLCY/glyphline/fonts"
	"github.com/ByLCY/glyphline/layout"
	"github.com/ByLCY/glyphline/renderer"
	canvasrenderer "github.com/ByLCY/glyphline/renderer/canvas"
	svgrenderer "github.com/ByLCY/glyphline/renderer/svg"
	"github.com/ByLCY/glyphline/sink"
	"github.com/ByLCY/glyphline/source"
)

// config 汇总命令行参数。
type config struct {
	font      string
	input     string
	output    string
	backend   string
	encoding  string
	nfc       bool
	data      any
	minify    bool
	precision int
	em        layout.Length
	fill      color.Color
	debug     string
	verbose   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glyphline: ")

	font := flag.String("font", "", "字体：文件路径、系统字体名或 builtin:<name>")
	input := flag.String("in", "./lines.txt", "文本文件路径，-- 表示标准输入")
	output := flag.String("out", "./output", "输出目录，或形如 dir/line_{}.svg 的文件名模板")
	backend := flag.String("backend", "gotext", "字体解析后端：gotext 或 sfnt")
	encoding := flag.String("encoding", "", "输入文本的字符集（IANA 名称），默认 UTF-8")
	nfc := flag.Bool("nfc", false, "在排版前对文本做 NFC 规范化")
	dataJSON := flag.String("data", "", "替换 ${...} 占位符的 JSON 数据")
	minify := flag.Bool("minify", false, "压缩 SVG 输出")
	precision := flag.Int("precision", 0, "-minify 时保留的有效数字位数，0 表示不限制")
	em := flag.String("em", "12pt", "PDF 输出时一个 em 的尺寸")
	fill := flag.String("fill", "#000000", "PDF 输出时的字形颜色")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	listFonts := flag.Bool("list-fonts", false, "列出内置字体后退出")
	verbose := flag.Bool("v", false, "输出每行的处理进度")
	flag.Parse()

	if *listFonts {
		for _, name := range fonts.Names() {
			fmt.Println("builtin:" + name)
		}
		return
	}

	cfg := config{
		font:      *font,
		input:     *input,
		output:    *output,
		backend:   *backend,
		encoding:  *encoding,
		nfc:       *nfc,
		minify:    *minify,
		precision: *precision,
		debug:     *debug,
		verbose:   *verbose,
	}
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &cfg.data); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}
	length, err := layout.ParseRawLengthStr(*em)
	if err != nil {
		log.Fatalf("解析 -em 失败: %v", err)
	}
	cfg.em = length
	if cfg.fill, err = canvasrenderer.ParseFill(*fill); err != nil {
		log.Fatalf("解析 -fill 失败: %v", err)
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("%v", err)
	}

	n, err := run(cfg, os.Stdin)
	if err != nil {
		log.Fatalf("生成失败: %v", err)
	}
	fmt.Printf("已生成 %d 个文件：%s\n", n, cfg.output)
}

func (c config) validate() error {
	if strings.TrimSpace(c.font) == "" {
		return fmt.Errorf("必须通过 -font 指定字体")
	}
	switch c.backend {
	case "gotext", "sfnt":
	default:
		return fmt.Errorf("未知的字体后端 %q（可选 gotext 或 sfnt）", c.backend)
	}
	if c.em.IsZero() {
		return fmt.Errorf("-em 不能为 0")
	}
	if c.precision < 0 {
		return fmt.Errorf("-precision 不能为负数")
	}
	return nil
}

// run 依次完成字体加载、文本读取与逐行输出，返回写出的文件数。
// 所有资源错误都在写出第一个文件之前返回；写入失败立即中止。
func run(cfg config, stdin io.Reader) (int, error) {
	face, err := openFace(cfg.font, cfg.backend)
	if err != nil {
		return 0, err
	}

	lines, err := source.Read(cfg.input, stdin, source.Options{
		Encoding: cfg.encoding,
		NFC:      cfg.nfc,
		Data:     cfg.data,
	})
	if err != nil {
		return 0, err
	}

	out, err := sink.NewDir(cfg.output)
	if err != nil {
		return 0, fmt.Errorf("准备输出目录失败: %w", err)
	}
	r, err := newRenderer(cfg, out.Format(), face)
	if err != nil {
		return 0, err
	}
	if cfg.verbose {
		log.Printf("%d 行文本，输出到 %s", len(lines), out)
	}

	layouts := layout.LayoutLines(lines, face)
	if cfg.debug != "" {
		if err := writeDebug(layouts, cfg.debug); err != nil {
			return 0, err
		}
	}

	for i, line := range layouts {
		data, err := r.Render(document.New(line))
		if err != nil {
			return i, fmt.Errorf("渲染第 %d 行失败: %w", i, err)
		}
		if err := out.Write(i, data); err != nil {
			return i, err
		}
		if cfg.verbose {
			log.Printf("第 %d 行 -> %s（%d 个字形，缺失 %d 个字符）", i, out.Path(i), len(line.Glyphs), len(line.Missing))
		}
	}
	return len(layouts), nil
}

func openFace(src, backend string) (fontface.Face, error) {
	data, err := fonts.Load(src)
	if err != nil {
		return nil, err
	}
	var face fontface.Face
	switch backend {
	case "sfnt":
		face, err = sfntface.Parse(data)
	default:
		face, err = gotextface.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("解析字体 %s 失败: %w", src, err)
	}
	return face, nil
}

func newRenderer(cfg config, format string, face fontface.Face) (renderer.Renderer, error) {
	switch format {
	case sink.FormatPDF:
		r, err := canvasrenderer.NewRenderer(canvasrenderer.Options{
			Em:         cfg.em,
			UnitsPerEm: face.UnitsPerEm(),
			Fill:       cfg.fill,
			Creator:    "glyphline",
		})
		if err != nil {
			return nil, fmt.Errorf("创建 PDF 渲染器失败: %w", err)
		}
		return r, nil
	default:
		return svgrenderer.NewRenderer(svgrenderer.Options{Minify: cfg.minify, Precision: cfg.precision}), nil
	}
}

func writeDebug(layouts []layout.LineLayout, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(layouts, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
