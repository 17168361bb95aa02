package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/pkg/cookie"
	"kidcare-booking/internal/pkg/errs"
	"kidcare-booking/internal/pkg/jwt"
	"kidcare-booking/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionKey   = "session"
	ctxSessionIDKey = "session_id"
)

// SessionStore resolves a session id taken from a validated token.
type SessionStore interface {
	Get(id uuid.UUID) (*store.Session, error)
}

type SessionMiddleware struct {
	jwtService *jwt.Service
	registry   SessionStore
}

func NewSessionMiddleware(jwtService *jwt.Service, registry SessionStore) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
		registry:   registry,
	}
}

// RequireSession resolves the caller's booking session from the session
// cookie or a Bearer token and stores it in the gin context.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Session token required", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Session token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session token", nil)
			return
		}

		session, err := m.registry.Get(claims.SessionID)
		if err != nil {
			msg := "Session not found"
			if errors.Is(err, errs.ErrSessionExpired) {
				msg = "Session expired"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		c.Set(ctxSessionKey, session)
		c.Set(ctxSessionIDKey, session.ID.String())
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSession(c *gin.Context) (*store.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*store.Session)
	return s, ok
}

// SetSession is used by handlers that create a session mid-request and by
// tests that bypass token validation.
func SetSession(c *gin.Context, s *store.Session) {
	c.Set(ctxSessionKey, s)
	c.Set(ctxSessionIDKey, s.ID.String())
}
