package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/table-reservation/internal/config"
)

func newContext(method, target string) echo.Context {
    e := echo.New()
    req := httptest.NewRequest(method, target, nil)
    req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
    c := e.NewContext(req, httptest.NewRecorder())
    c.SetPath("/v1/menu")
    return c
}

func TestBuildRateKey(t *testing.T) {
    c := newContext(http.MethodGet, "/v1/menu")
    cfg := config.RateLimitConfig{Prefix: "rl"}

    cfg.KeyStrategy = "ip"
    assert.Equal(t, "rl:ip:10.0.0.7", buildRateKey(cfg, c))
    cfg.KeyStrategy = "route"
    assert.Equal(t, "rl:route:GET /v1/menu", buildRateKey(cfg, c))
    cfg.KeyStrategy = ""
    assert.Equal(t, "rl:ip:10.0.0.7:route:GET /v1/menu", buildRateKey(cfg, c))
}

func TestCacheKeyDependsOnQuery(t *testing.T) {
    cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
    a := cacheKeyFrom(cfg, newContext(http.MethodGet, "/v1/menu?category=postres"))
    b := cacheKeyFrom(cfg, newContext(http.MethodGet, "/v1/menu?category=bebidas"))
    assert.NotEqual(t, a, b)
    assert.Regexp(t, `^cache:[0-9a-f]{40}$`, a)

    cfg.KeyStrategy = "route"
    assert.Equal(t, cacheKeyFrom(cfg, newContext(http.MethodGet, "/v1/menu?category=postres")),
        cacheKeyFrom(cfg, newContext(http.MethodGet, "/v1/menu?category=bebidas")))
}

func TestDisabledMiddlewaresPassThrough(t *testing.T) {
    called := 0
    next := func(c echo.Context) error { called++; return c.NoContent(http.StatusNoContent) }

    c := newContext(http.MethodGet, "/v1/menu")
    assert.NoError(t, NewRedisCache(config.CacheConfig{Enabled: true}, nil)(next)(c))
    assert.NoError(t, NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)(next)(c))
    assert.Equal(t, 2, called)
}

func TestCaptureWriterLimit(t *testing.T) {
    rec := httptest.NewRecorder()
    cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}
    _, _ = cw.Write([]byte("abc"))
    assert.False(t, cw.over)
    _, _ = cw.Write([]byte("de"))
    assert.True(t, cw.over)
    assert.Equal(t, "abcde", rec.Body.String())
}

func TestAsInt64(t *testing.T) {
    assert.Equal(t, int64(3), asInt64(int64(3)))
    assert.Equal(t, int64(7), asInt64("7"))
    assert.Equal(t, int64(0), asInt64(nil))
}
