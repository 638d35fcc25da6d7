package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithEnvSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ROSTER_AUTH_JWT_SECRET", "test-secret-key-for-unit-testing")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("期望 Port=8080，实际=%d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverFile {
		t.Errorf("期望 Driver=file，实际=%s", cfg.Storage.Driver)
	}
	if cfg.Auth.PasswordEncoding != PasswordEncodingBase64 {
		t.Errorf("期望 PasswordEncoding=base64，实际=%s", cfg.Auth.PasswordEncoding)
	}
	if cfg.Auth.SessionTokenTTL != 12*time.Hour {
		t.Errorf("期望 SessionTokenTTL=12h，实际=%v", cfg.Auth.SessionTokenTTL)
	}
	if len(cfg.Schedule.ShiftTypes) != 3 {
		t.Errorf("期望 3 种班次类型，实际=%v", cfg.Schedule.ShiftTypes)
	}
	if len(cfg.Log.Outputs) != 1 || cfg.Log.Outputs[0] != "stdout" || cfg.Log.Service != "shift-roster" {
		t.Errorf("日志默认值不符: %+v", cfg.Log)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "roster.yaml")
	content := []byte(`
server:
  port: 9090
storage:
  driver: sqlite
  sqlite_path: /tmp/roster.db
auth:
  jwt_secret: file-secret-at-least-16
  password_encoding: bcrypt
schedule:
  timezone: Europe/Madrid
  shift_types: [Mañana, Tarde, Noche]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 Port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverSQLite {
		t.Errorf("期望 Driver=sqlite，实际=%s", cfg.Storage.Driver)
	}
	if cfg.Schedule.Location().String() != "Europe/Madrid" {
		t.Errorf("期望时区 Europe/Madrid，实际=%s", cfg.Schedule.Location())
	}
	if cfg.Schedule.ShiftTypes[0] != "Mañana" {
		t.Errorf("期望首个班次类型=Mañana，实际=%s", cfg.Schedule.ShiftTypes[0])
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ROSTER_AUTH_JWT_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Error("缺少 jwt_secret 时应失败")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 8080},
		Storage:  StorageConfig{Driver: "mongo"},
		Auth:     AuthConfig{JWTSecret: "0123456789abcdef", PasswordEncoding: PasswordEncodingBase64},
		Schedule: ScheduleConfig{Timezone: "UTC"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("未知驱动应校验失败")
	}
}

// chdir 切换工作目录并在测试结束时恢复（等价于 Go 1.24 的 t.Chdir）
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取工作目录失败: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("恢复工作目录失败: %v", err)
		}
	})
}
