package api

import (
	"errors"
	"net/http"

	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/handler/middleware"
	"kidcare-booking/internal/pkg/errs"
	"kidcare-booking/internal/store"
	"kidcare-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

func requireSession(c *gin.Context) (*store.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Session required", nil)
		return nil, false
	}
	return s, true
}

func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrIncompleteFlow):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking flow is incomplete", nil)
	case errors.Is(err, usecase.ErrNoBooking):
		httperr.AbortWithError(c, http.StatusConflict, err, "No booking has been submitted yet", nil)
	default:
		httperr.AbortWithAPIError(c, err)
	}
}
