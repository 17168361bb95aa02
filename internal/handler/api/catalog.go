package api

import (
	"net/http"
	"strings"

	"kidcare-booking/internal/domain/booking"
	resdto "kidcare-booking/internal/handler/dto/response"
	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/store"

	"github.com/gin-gonic/gin"
)

// CatalogHandler triggers catalog fetches. Fetch failures are not HTTP
// errors: they are reported in the catalog's error field and in the UI state.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// @Summary List franchises
// @Description Refetches the franchise list into the session catalog and returns the catalog
// @Tags catalog
// @Produce json
// @Security SessionToken
// @Success 200 {object} resdto.CatalogResponse
// @Failure 401 {object} httperr.Response
// @Router /api/franchises [get]
func (h *CatalogHandler) ListFranchises(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	session.Catalog.FetchFranchises(c.Request.Context())
	h.respond(c, session)
}

// @Summary Check availability
// @Description Replaces the session's availability snapshot with the one for the franchise and date
// @Tags catalog
// @Produce json
// @Security SessionToken
// @Param franchiseId path string true "Franchise ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CatalogResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability/{franchiseId} [get]
func (h *CatalogHandler) Availability(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	date := strings.TrimSpace(c.Query("date"))
	if _, err := booking.ParseDate(date); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	session.Catalog.FetchAvailability(c.Request.Context(), c.Param("franchiseId"), date)
	h.respond(c, session)
}

func (h *CatalogHandler) respond(c *gin.Context, session *store.Session) {
	res, err := resdto.FromCatalogSnapshot(session.Catalog.Snapshot())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
