package api

import (
	"net/http"

	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/navigation"

	"github.com/gin-gonic/gin"
)

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// @Summary Resolve navigation path
// @Description Maps a frontend path to its view; without a path, lists the static views
// @Tags navigation
// @Produce json
// @Param path query string false "Frontend path"
// @Success 200 {object} navigation.View
// @Failure 404 {object} httperr.Response
// @Router /api/navigation [get]
func (h *NavigationHandler) Resolve(c *gin.Context) {
	path, given := c.GetQuery("path")
	if !given {
		c.JSON(http.StatusOK, navigation.Views())
		return
	}
	view, err := navigation.Resolve(path)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "No view for path", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}
