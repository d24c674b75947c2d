package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ravyn-demo/internal/api"
	"ravyn-demo/internal/cache"
	"ravyn-demo/internal/config"
	"ravyn-demo/internal/logging"
	mw "ravyn-demo/internal/middleware"
	"ravyn-demo/internal/router"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

var (
	loadConfig     = config.Load
	newLogger      = logging.New
	newRedisClient = cache.NewRedisClient
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	signalContext  = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
)

// newServer 組裝 echo 實例、中介層與路由
func newServer(cfg *config.Config, logger *zap.Logger, rdb cache.Cache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()
	e.Debug = cfg.LogLevel == "debug"

	// 路徑參數不含 "/"，結尾斜線以 307 轉址到無斜線路徑
	e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusTemporaryRedirect,
	}))
	e.Use(middleware.RequestID())
	e.Use(mw.RequestLogger(logger))
	e.Use(middleware.Recover())

	if cfg.RateLimitEnabled() {
		var limiter mw.Limiter
		if rdb != nil {
			limiter = mw.NewRedisLimiter(rdb, cfg.RateLimitRPS, cfg.RateLimitBurst)
		} else {
			limiter = mw.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		}
		e.Use(mw.RateLimit(limiter, logger, func(c echo.Context) bool {
			return c.Path() == "/healthz"
		}))
	}

	router.Setup(e, cfg, rdb)
	return e
}

func run() error {
	cfg, err := loadConfig(".")
	if err != nil {
		return fmt.Errorf("載入設定失敗: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("建立 logger 失敗: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var rdb cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err = newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("關閉 Redis 連線失敗", zap.Error(err))
			}
		}()
	}

	e := newServer(cfg, logger, rdb)

	ctx, stop := signalContext()
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTPServerAddress))
		errCh <- startServer(e, cfg.HTTPServerAddress)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("伺服器啟動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("伺服器關閉失敗: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}
