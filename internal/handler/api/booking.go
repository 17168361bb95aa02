package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "kidcare-booking/internal/handler/dto/request"
	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/pkg/errs"
	"kidcare-booking/internal/pkg/qrimage"
	"kidcare-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var ErrReferenceRequired = errs.New("reference is required")

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Param id path string true "Booking ID"
// @Success 200 {object} booking.BookingDetails
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	details, err := h.bookingUseCase.GetBookingDetails(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// @Summary Modify booking
// @Description Sends only the supplied fields to the backend
// @Tags bookings
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "Booking ID"
// @Param request body reqdto.ModifyBookingRequest true "Changes"
// @Success 200 {object} booking.ModifyBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Modify(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	changes, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	if changes.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrNoChanges, "No changes supplied", nil)
		return
	}
	resp, err := h.bookingUseCase.ModifyBooking(c.Request.Context(), session, c.Param("id"), changes)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Param id path string true "Booking ID"
// @Success 200 {object} booking.CancelBookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	resp, err := h.bookingUseCase.CancelBooking(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking QR code
// @Description JSON by default; format=png renders qr_code_data as a PNG image
// @Tags bookings
// @Produce json
// @Produce png
// @Security SessionToken
// @Param id path string true "Booking ID"
// @Param format query string false "json or png"
// @Param size query int false "PNG edge length in pixels (64-1024)"
// @Success 200 {object} booking.QRCodeResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id}/qr [get]
func (h *BookingHandler) QRCode(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	resp, err := h.bookingUseCase.GetBookingQRCode(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	if !strings.EqualFold(c.Query("format"), "png") {
		c.JSON(http.StatusOK, resp)
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(qrimage.DefaultSize)))
	png, err := qrimage.EncodePNG(resp.QRCodeData, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "QR code data unavailable", nil)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// @Summary Look up booking
// @Description Finds a booking by its reference number, falling back to treating the reference as a booking id
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Param reference query string true "Reference number or booking id"
// @Success 200 {object} booking.BookingDetails
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/lookup [get]
func (h *BookingHandler) Lookup(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	reference := strings.TrimSpace(c.Query("reference"))
	if reference == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, ErrReferenceRequired, "Reference is required", nil)
		return
	}
	details, err := h.bookingUseCase.LookupBooking(c.Request.Context(), session, reference)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
