//go:build unit || e2e

package sessiontest

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	resdto "kidcare-booking/internal/handler/dto/response"
	"kidcare-booking/internal/handler/middleware"
	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/config"
	pkgcookie "kidcare-booking/internal/pkg/cookie"
	"kidcare-booking/internal/store"
	"kidcare-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const CreateURL = "/api/sessions"

// Epoch is the fixed instant test clocks start at.
var Epoch = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewSession builds a detached session whose catalog reads from source.
func NewSession(source store.FranchiseSource, clk clock.Clock) *store.Session {
	return store.NewSession(uuid.New(), source, store.NewUI(clk, 5*time.Second), clk.Now())
}

// NewRegistry returns a registry on the test config with its sessions
// closed at cleanup.
func NewRegistry(t *testing.T, source store.FranchiseSource, clk clock.Clock) *store.Registry {
	t.Helper()
	cfg := config.NewTestConfig()
	r := store.NewRegistry(source, clk, cfg.Session, cfg.Notification, DiscardLogger())
	t.Cleanup(r.Close)
	return r
}

// Inject places s in the gin context the way the session middleware does.
func Inject(s *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetSession(c, s)
		c.Next()
	}
}

// Start opens a session through the public endpoint and returns its token
// and cookie.
func Start(t *testing.T, router *gin.Engine) (string, *http.Cookie) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, CreateURL, nil, "")
	var res resdto.SessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotEmpty(t, res.Token, "session token missing")

	cookie := httptest.ExtractCookie(w, pkgcookie.SessionCookieName)
	require.NotNil(t, cookie, "session cookie missing")
	return res.Token, cookie
}
