package api

import (
	"log/slog"
	"net/http"

	resdto "kidcare-booking/internal/handler/dto/response"
	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/config"
	"kidcare-booking/internal/pkg/cookie"
	"kidcare-booking/internal/pkg/jwt"
	"kidcare-booking/internal/store"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	registry   *store.Registry
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
	clock      clock.Clock
}

func NewSessionHandler(registry *store.Registry, jwtService *jwt.Service, cfg config.Config, clk clock.Clock) *SessionHandler {
	return &SessionHandler{
		registry:   registry,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
		clock:      clk,
	}
}

// @Summary Start booking session
// @Description Create an empty booking session and issue its token as cookie and body
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 500 {object} httperr.Response
// @Router /api/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	session := h.registry.Create()

	token, err := h.jwtService.GenerateToken(session.ID)
	if err != nil {
		h.registry.Discard(session.ID)
		slog.Error("Failed to sign session token", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	c.JSON(http.StatusCreated, resdto.SessionResponse{
		SessionID: session.ID.String(),
		Token:     token,
		ExpiresAt: h.clock.Now().Add(h.jwtService.TokenDuration()).UTC(),
	})
}

// @Summary Abandon booking session
// @Description Discard the current session and everything drafted in it
// @Tags sessions
// @Security SessionToken
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/sessions/current [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	h.registry.Discard(session.ID)
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
