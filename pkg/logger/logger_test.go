package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
)

func TestNewLogger_FileOutputWithService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.log")

	logger, err := NewLogger(&config.LogConfig{
		Level:   "info",
		Format:  "json",
		Outputs: []string{path},
		Service: "shift-roster",
	})
	if err != nil {
		t.Fatalf("NewLogger 应成功: %v", err)
	}
	logger.Debug("低于级别，不应输出")
	logger.Info("员工已创建")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("日志应为单行 JSON: %v, 内容=%s", err, data)
	}
	if entry["msg"] != "员工已创建" {
		t.Errorf("期望 msg=员工已创建，实际=%v", entry["msg"])
	}
	if entry["service"] != "shift-roster" {
		t.Errorf("期望 service=shift-roster，实际=%v", entry["service"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("日志应包含 time 字段")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "loud"}); err == nil {
		t.Error("非法日志级别应返回错误")
	}
}
