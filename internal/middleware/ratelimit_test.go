package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iliyamo/venue-booking/internal/config"
)

func newLimitedEcho(t *testing.T, cfg config.RateLimitConfig) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.Use(RateLimit(cfg, rdb, zerolog.Nop()))
	e.GET("/v1/venues", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	return e, mr
}

func get(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/venues", nil)
	req.RemoteAddr = ip + ":40000"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func bucket(capacity int) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            2 * time.Hour,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
}

func TestRateLimit_BlocksWhenBucketEmpty(t *testing.T) {
	e, _ := newLimitedEcho(t, bucket(2))

	for i := 0; i < 2; i++ {
		if rec := get(e, "192.0.2.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
	rec := get(e, "192.0.2.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" || rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("unexpected headers %v", rec.Header())
	}
}

func TestRateLimit_SeparateBucketsPerIP(t *testing.T) {
	e, mr := newLimitedEcho(t, bucket(1))

	if rec := get(e, "192.0.2.1"); rec.Code != http.StatusOK {
		t.Fatalf("first ip: %d", rec.Code)
	}
	if rec := get(e, "192.0.2.2"); rec.Code != http.StatusOK {
		t.Fatalf("second ip: %d", rec.Code)
	}
	if !mr.Exists("rl:ip:192.0.2.1:route:GET /v1/venues") {
		t.Errorf("bucket key missing, have %v", mr.Keys())
	}
}

func TestRateLimit_RedisDownLetsRequestsThrough(t *testing.T) {
	e, mr := newLimitedEcho(t, bucket(1))
	mr.Close()

	for i := 0; i < 3; i++ {
		if rec := get(e, "192.0.2.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
}

func TestRateLimit_DisabledWithoutClient(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(bucket(1), nil, zerolog.Nop()))
	e.GET("/v1/venues", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	for i := 0; i < 3; i++ {
		if rec := get(e, "192.0.2.1"); rec.Code != http.StatusOK || rec.Header().Get("X-RateLimit-Limit") != "" {
			t.Fatalf("request %d: status %d headers %v", i, rec.Code, rec.Header())
		}
	}
}
