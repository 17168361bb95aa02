package api

import (
	"net/http"

	reqdto "kidcare-booking/internal/handler/dto/request"
	resdto "kidcare-booking/internal/handler/dto/response"
	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/store"

	"github.com/gin-gonic/gin"
)

type UIHandler struct{}

func NewUIHandler() *UIHandler {
	return &UIHandler{}
}

// @Summary Get UI state
// @Description Loading flag, accumulated API errors and live notifications
// @Tags ui
// @Produce json
// @Security SessionToken
// @Success 200 {object} resdto.UIResponse
// @Router /api/ui [get]
func (h *UIHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	res, err := resdto.FromUISnapshot(session.UI.Snapshot())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Clear errors
// @Tags ui
// @Security SessionToken
// @Success 204 "No Content"
// @Router /api/ui/errors [delete]
func (h *UIHandler) ClearErrors(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	session.UI.ClearErrors()
	c.Status(http.StatusNoContent)
}

// @Summary Add notification
// @Description Adds a notification that expires on its own; type defaults to info
// @Tags ui
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body reqdto.AddNotificationRequest true "Notification"
// @Success 201 {object} resdto.NotificationCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/ui/notifications [post]
func (h *UIHandler) AddNotification(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id := session.UI.AddNotification(req.Message, store.NotificationType(req.Type))
	c.JSON(http.StatusCreated, resdto.NotificationCreatedResponse{ID: id})
}

// @Summary Dismiss notification
// @Description Unknown ids are ignored
// @Tags ui
// @Security SessionToken
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Router /api/ui/notifications/{id} [delete]
func (h *UIHandler) RemoveNotification(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	session.UI.RemoveNotification(c.Param("id"))
	c.Status(http.StatusNoContent)
}
