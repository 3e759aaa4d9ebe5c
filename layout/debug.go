package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteDebugJSON 将排版结果输出为 JSON，便于调试偏移与路径数据。
func WriteDebugJSON(lines []LineLayout, path string) error {
	if lines == nil {
		lines = []LineLayout{}
	}
	data, err := json.MarshalIndent(struct {
		Lines []LineLayout `json:"lines"`
	}{lines}, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化排版结果失败: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
