// File: internal/logging/logging.go
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New 依 level 與 format 建立 zap logger
// format 為 "json" 時使用 production 設定，"console" 使用 development 設定
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("無效的 log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("無效的 log format: %q", format)
	}
	cfg.Level = lvl

	return cfg.Build()
}
