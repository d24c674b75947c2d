package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"ravyn-demo/internal/cache"
	"ravyn-demo/internal/dto"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter 判斷 key（通常為 client IP）目前是否可以再發出請求
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// limitFor 將 rps 與 burst 換算為每個視窗可接受的請求數
func limitFor(rps float64, burst int) int {
	limit := int(math.Ceil(rps))
	if burst > limit {
		limit = burst
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter 以 token bucket 為每個 key 限流，只在單一行程內有效
type MemoryLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryLimiter 建立行程內限流器，閒置超過 10 分鐘的 key 會被清除
func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    limitFor(rps, burst),
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.idle {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

// RedisLimiter 以固定一秒視窗在 Redis 中計數，多個實例共用同一額度
type RedisLimiter struct {
	cache  cache.Cache
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(c cache.Cache, rps float64, burst int) *RedisLimiter {
	return &RedisLimiter{
		cache:  c,
		limit:  int64(limitFor(rps, burst)),
		window: time.Second,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := l.now().Truncate(l.window).Unix()
	k := fmt.Sprintf("ratelimit:%s:%d", key, slot)

	n, err := l.cache.Incr(ctx, k).Result()
	if err != nil {
		return true, fmt.Errorf("incr %s: %w", k, err)
	}
	if n == 1 {
		// 多留一個視窗，避免時鐘誤差導致 key 提早消失
		if err := l.cache.Expire(ctx, k, 2*l.window).Err(); err != nil {
			return true, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	return n <= l.limit, nil
}

// RateLimit 超過限制時回傳 429；Limiter 出錯時記錄並放行
func RateLimit(l Limiter, logger *zap.Logger, skipper echomw.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = echomw.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			ip := c.RealIP()
			ok, err := l.Allow(c.Request().Context(), ip)
			if err != nil {
				logger.Warn("rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
				return next(c)
			}
			if !ok {
				logger.Debug("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Path()))
				return c.JSON(http.StatusTooManyRequests, dto.HTTPError{Message: "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
