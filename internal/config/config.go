// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// 預設的 CSRF cookie 值，沿用範例應用的固定 token
const DefaultCSRFCookieValue = "CIwNZNlR4XbisJF39I8yWnWX9wX4WFoz"

// Config 服務設定，來源為 .env 檔與環境變數
type Config struct {
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	SwaggerEnabled    bool          `mapstructure:"SWAGGER_ENABLED"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Cookie 安全設定
	APIKeyCookie     string `mapstructure:"API_KEY_COOKIE"`
	CSRFCookieName   string `mapstructure:"CSRF_COOKIE_NAME"`
	CSRFCookieValue  string `mapstructure:"CSRF_COOKIE_VALUE"`
	CSRFCookieMaxAge int    `mapstructure:"CSRF_COOKIE_MAX_AGE"`

	// 限流，RPS <= 0 表示關閉
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// Redis 為選用，未設定 REDIS_ADDR 時限流使用行程內計數
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

var defaults = map[string]any{
	"HTTP_SERVER_ADDRESS": ":8000",
	"SHUTDOWN_TIMEOUT":    "10s",
	"SWAGGER_ENABLED":     true,
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "json",
	"API_KEY_COOKIE":      "X_COOKIE_API",
	"CSRF_COOKIE_NAME":    "csrf",
	"CSRF_COOKIE_VALUE":   DefaultCSRFCookieValue,
	"CSRF_COOKIE_MAX_AGE": 3000,
	"RATE_LIMIT_RPS":      0,
	"RATE_LIMIT_BURST":    0,
	"REDIS_ADDR":          "",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
}

// Load 讀取 path 目錄下的 .env（不存在則略過）並以環境變數覆寫
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	envFile := filepath.Join(path, ".env")
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("讀取 %s 失敗: %w", envFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析設定失敗: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 檢查設定值是否合理
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("無效的 LOG_LEVEL: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("無效的 LOG_FORMAT: %q", c.LogFormat)
	}
	if c.HTTPServerAddress == "" {
		return fmt.Errorf("HTTP_SERVER_ADDRESS 未設定")
	}
	if c.APIKeyCookie == "" || c.CSRFCookieName == "" {
		return fmt.Errorf("cookie 名稱不可為空")
	}
	if c.CSRFCookieMaxAge <= 0 {
		return fmt.Errorf("無效的 CSRF_COOKIE_MAX_AGE: %d", c.CSRFCookieMaxAge)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("無效的 SHUTDOWN_TIMEOUT: %s", c.ShutdownTimeout)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("限流設定不可為負數")
	}
	return nil
}

// RateLimitEnabled 是否啟用限流
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}
