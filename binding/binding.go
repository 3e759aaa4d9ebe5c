// Package binding fills ${...} placeholders in text lines from decoded JSON data.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([^{}]+)\}`)

// Interpolate 将行内的 ${path.to.value} 替换为 data 中对应的值。
// data 为空、路径不存在或值不是标量时保留原占位符。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		val, ok := Lookup(data, path)
		if !ok {
			return match
		}
		s, ok := scalar(val)
		if !ok {
			return match
		}
		return s
	})
}

// InterpolateLines 对每一行调用 Interpolate，原切片不变。
func InterpolateLines(lines []string, data any) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Interpolate(line, data)
	}
	return out
}

// Lookup 按 a.b[0].c 形式的路径在 JSON 解码结果中取值。
func Lookup(data any, path string) (any, bool) {
	steps, err := parsePath(path)
	if err != nil {
		return nil, false
	}
	current := data
	for _, st := range steps {
		switch c := current.(type) {
		case map[string]any:
			if st.key == "" {
				return nil, false
			}
			v, ok := c[st.key]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			if st.key != "" || st.index < 0 || st.index >= len(c) {
				return nil, false
			}
			current = c[st.index]
		default:
			return nil, false
		}
	}
	return current, true
}

// step 是路径中的一段：key 非空表示取字段，否则取下标。
type step struct {
	key   string
	index int
}

func parsePath(path string) ([]step, error) {
	if path == "" {
		return nil, fmt.Errorf("路径为空")
	}
	var steps []step
	for _, part := range strings.Split(path, ".") {
		name := part
		rest := ""
		if i := strings.IndexByte(part, '['); i >= 0 {
			name, rest = part[:i], part[i:]
		}
		if name == "" && rest == "" {
			return nil, fmt.Errorf("路径 %q 含有空字段", path)
		}
		if name != "" {
			steps = append(steps, step{key: name})
		}
		for rest != "" {
			end := strings.IndexByte(rest, ']')
			if rest[0] != '[' || end < 0 {
				return nil, fmt.Errorf("路径 %q 的下标不完整", path)
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("路径 %q 的下标不是整数: %w", path, err)
			}
			steps = append(steps, step{index: idx})
			rest = rest[end+1:]
		}
	}
	return steps, nil
}

func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case nil:
		return "", true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}
