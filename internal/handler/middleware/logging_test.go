//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"kidcare-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestLoggerRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	t.Run("generated when absent", func(t *testing.T) {
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("caller id is echoed", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-123")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("oversized caller id is replaced", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 65))
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 36)
	})
}

func TestRequestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	r.ServeHTTP(nethttptest.NewRecorder(), nethttptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String(), "health checks log at debug")

	r.ServeHTTP(nethttptest.NewRecorder(), nethttptest.NewRequest(http.MethodGet, "/ping", nil))
	out := buf.String()
	assert.Contains(t, out, `msg="Request completed"`)
	assert.Contains(t, out, "status_code=200")
	assert.Contains(t, out, "path=/ping")
	assert.NotContains(t, out, "session_id")
}
