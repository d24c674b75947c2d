package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ravyn-demo/internal/cache"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLimitFor(t *testing.T) {
	require.Equal(t, 1, limitFor(0.5, 0))
	require.Equal(t, 3, limitFor(2.1, 0))
	require.Equal(t, 10, limitFor(2, 10))
	require.Equal(t, 1, limitFor(0, 0))
}

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	l := NewMemoryLimiter(1, 2)
	l.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.1.1.1")
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "1.1.1.1")
	require.False(t, ok)

	// 不同 key 互不影響
	ok, _ = l.Allow(ctx, "2.2.2.2")
	require.True(t, ok)

	now = now.Add(time.Second)
	ok, _ = l.Allow(ctx, "1.1.1.1")
	require.True(t, ok)
}

func TestMemoryLimiterEvictsIdle(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	l := NewMemoryLimiter(1, 1)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(ctx, "a")
	_, _ = l.Allow(ctx, "b")
	require.Len(t, l.visitors, 2)

	now = now.Add(11 * time.Minute)
	_, _ = l.Allow(ctx, "b")
	require.Len(t, l.visitors, 1)
	_, ok := l.visitors["b"]
	require.True(t, ok)
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()
	counts := map[string]int64{}
	expires := map[string]time.Duration{}
	fc := &cache.FakeCache{
		IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
			counts[key]++
			return redis.NewIntResult(counts[key], nil)
		},
		ExpireFn: func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			expires[key] = ttl
			return redis.NewBoolResult(true, nil)
		},
	}
	now := time.Unix(1_700_000_000, 0)
	l := NewRedisLimiter(fc, 2, 0)
	l.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	require.False(t, ok)

	key := "ratelimit:ip:1700000000"
	require.Equal(t, int64(3), counts[key])
	require.Equal(t, 2*time.Second, expires[key])
	require.Len(t, expires, 1)

	now = now.Add(time.Second)
	ok, _ = l.Allow(ctx, "ip")
	require.True(t, ok)
}

func TestRedisLimiterErrors(t *testing.T) {
	ctx := context.Background()
	l := NewRedisLimiter(&cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(0, errors.New("down")) },
	}, 1, 1)
	ok, err := l.Allow(ctx, "ip")
	require.Error(t, err)
	require.True(t, ok)

	l = NewRedisLimiter(&cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(1, nil) },
		ExpireFn: func(context.Context, string, time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(false, errors.New("down"))
		},
	}, 1, 1)
	ok, err = l.Allow(ctx, "ip")
	require.Error(t, err)
	require.True(t, ok)
}

type stubLimiter struct {
	ok  bool
	err error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) { return s.ok, s.err }

func serveLimited(t *testing.T, l Limiter, logger *zap.Logger, path string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	called := false
	h := RateLimit(l, logger, func(c echo.Context) bool {
		return c.Request().URL.Path == "/healthz"
	})(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, called
}

func TestRateLimit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	rec, called := serveLimited(t, stubLimiter{ok: true}, logger, "/ravyn")
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, called = serveLimited(t, stubLimiter{ok: false}, logger, "/ravyn")
	require.False(t, called)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "rate limit exceeded"))

	rec, called = serveLimited(t, stubLimiter{ok: false}, logger, "/healthz")
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, called = serveLimited(t, stubLimiter{err: errors.New("down")}, logger, "/ravyn")
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("rate limiter unavailable").Len())
}

func TestRateLimitNilSkipper(t *testing.T) {
	e := echo.New()
	h := RateLimit(stubLimiter{ok: false}, zap.NewNop(), nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}
