//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kidcare-booking/internal/handler/middleware"
	"kidcare-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewRateLimiter(cfg).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doFrom(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterBurstPerIP(t *testing.T) {
	r := newRateLimitedRouter(config.RateLimitConfig{RPS: 0.001, Burst: 2})

	assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, doFrom(r, "10.0.0.1"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.2"))
}

func TestRateLimiterDisabled(t *testing.T) {
	r := newRateLimitedRouter(config.RateLimitConfig{RPS: 0, Burst: 0})
	for range 50 {
		assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1"))
	}
}
