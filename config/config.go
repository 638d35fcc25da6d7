package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"`
	CORS         CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// 持久化后端
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// StorageConfig 持久化网关配置
type StorageConfig struct {
	Driver     string         `mapstructure:"driver"`
	Dir        string         `mapstructure:"dir"`         // file 驱动：每个槽位一个 JSON 文件
	SQLitePath string         `mapstructure:"sqlite_path"` // sqlite 驱动：数据库文件
	Database   DatabaseConfig `mapstructure:"db"`
	Redis      RedisConfig    `mapstructure:"redis"`
}

// DatabaseConfig PostgreSQL 数据库配置
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN 生成 PostgreSQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// 密码编码方式
const (
	PasswordEncodingBase64 = "base64"
	PasswordEncodingBcrypt = "bcrypt"
)

// AuthConfig 会话与密码配置
type AuthConfig struct {
	JWTSecret        string        `mapstructure:"jwt_secret"`
	SessionTokenTTL  time.Duration `mapstructure:"session_token_ttl"`
	PasswordEncoding string        `mapstructure:"password_encoding"`
	BcryptCost       int           `mapstructure:"bcrypt_cost"`
}

// ScheduleConfig 排班业务配置
type ScheduleConfig struct {
	// Timezone 决定"今天"的日历日期，用于"不得早于/晚于今天"的校验
	Timezone   string   `mapstructure:"timezone"`
	ShiftTypes []string `mapstructure:"shift_types"`
}

// Location 解析时区，配置非法时回退 UTC
func (c *ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RateLimitConfig 登录/注册限流配置（依赖 Redis）
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level   string   `mapstructure:"level"`
	Format  string   `mapstructure:"format"`
	Outputs []string `mapstructure:"outputs"` // stdout、stderr 或文件路径
	Service string   `mapstructure:"service"` // 每条日志附带的 service 字段
}

// Load 从 .env、配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	// .env 仅补充环境变量，不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("读取 .env 失败: %w", err)
	}

	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.sqlite_path", "./data/roster.db")
	v.SetDefault("storage.db.host", "localhost")
	v.SetDefault("storage.db.port", 5432)
	v.SetDefault("storage.db.name", "shift_roster")
	v.SetDefault("storage.db.user", "postgres")
	v.SetDefault("storage.db.password", "")
	v.SetDefault("storage.db.sslmode", "disable")
	v.SetDefault("storage.db.timezone", "UTC")
	v.SetDefault("storage.db.max_open_conns", 10)
	v.SetDefault("storage.db.max_idle_conns", 5)
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.key_prefix", "roster:")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.session_token_ttl", "12h")
	v.SetDefault("auth.password_encoding", PasswordEncodingBase64)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("schedule.timezone", "UTC")
	v.SetDefault("schedule.shift_types", []string{"Morning", "Afternoon", "Night"})

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.limit", 10)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.outputs", []string{"stdout"})
	v.SetDefault("log.service", "shift-roster")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("ROSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 不能为空")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 长度不能少于 16 字符")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	switch c.Storage.Driver {
	case DriverMemory, DriverFile, DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("配置校验失败: 不支持的 storage.driver %q", c.Storage.Driver)
	}
	switch c.Auth.PasswordEncoding {
	case PasswordEncodingBase64, PasswordEncodingBcrypt:
	default:
		return fmt.Errorf("配置校验失败: 不支持的 auth.password_encoding %q", c.Auth.PasswordEncoding)
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("配置校验失败: schedule.timezone 无效: %w", err)
	}
	return nil
}
