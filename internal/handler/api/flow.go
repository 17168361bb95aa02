package api

import (
	"net/http"

	reqdto "kidcare-booking/internal/handler/dto/request"
	resdto "kidcare-booking/internal/handler/dto/response"
	"kidcare-booking/internal/handler/httperr"
	"kidcare-booking/internal/pkg/errs"
	"kidcare-booking/internal/store"
	"kidcare-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var ErrFranchiseNotListed = errs.New("franchise not in catalog")

type FlowHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewFlowHandler(bookingUseCase usecase.BookingUseCase) *FlowHandler {
	return &FlowHandler{bookingUseCase: bookingUseCase}
}

// @Summary Get booking flow
// @Description Current wizard step, collected data and the view path for the step
// @Tags flow
// @Produce json
// @Security SessionToken
// @Success 200 {object} resdto.FlowResponse
// @Failure 401 {object} httperr.Response
// @Router /api/flow [get]
func (h *FlowHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, session)
}

// @Summary Next step
// @Tags flow
// @Produce json
// @Security SessionToken
// @Success 200 {object} resdto.FlowResponse
// @Router /api/flow/next [post]
func (h *FlowHandler) Next(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	session.Flow.Next()
	h.respond(c, http.StatusOK, session)
}

// @Summary Previous step
// @Tags flow
// @Produce json
// @Security SessionToken
// @Success 200 {object} resdto.FlowResponse
// @Router /api/flow/prev [post]
func (h *FlowHandler) Prev(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	session.Flow.Prev()
	h.respond(c, http.StatusOK, session)
}

// @Summary Reset flow
// @Tags flow
// @Produce json
// @Security SessionToken
// @Success 200 {object} resdto.FlowResponse
// @Router /api/flow/reset [post]
func (h *FlowHandler) Reset(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	session.Flow.Reset()
	h.respond(c, http.StatusOK, session)
}

// @Summary Select franchise
// @Description Selects a franchise from the session's catalog, fetching the catalog once if needed
// @Tags flow
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body reqdto.SelectFranchiseRequest true "Franchise"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/flow/franchise [put]
func (h *FlowHandler) SelectFranchise(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.SelectFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	franchise, found := session.Catalog.FindFranchise(req.FranchiseID)
	if !found {
		session.Catalog.FetchFranchises(c.Request.Context())
		franchise, found = session.Catalog.FindFranchise(req.FranchiseID)
	}
	if !found {
		httperr.AbortWithError(c, http.StatusNotFound, ErrFranchiseNotListed, "Franchise not found", nil)
		return
	}

	session.Flow.SetFranchise(franchise)
	h.respond(c, http.StatusOK, session)
}

// @Summary Select date and time
// @Tags flow
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body reqdto.SelectDateTimeRequest true "Window"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Router /api/flow/datetime [put]
func (h *FlowHandler) SelectDateTime(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.SelectDateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	window, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	session.Flow.SetDateTime(window)
	h.respond(c, http.StatusOK, session)
}

// @Summary Set customer information
// @Tags flow
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body reqdto.CustomerInfoRequest true "Customer"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Router /api/flow/customer [put]
func (h *FlowHandler) SetCustomerInfo(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.CustomerInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	session.Flow.SetCustomerInfo(req.ToDomain())
	h.respond(c, http.StatusOK, session)
}

// @Summary Set child information
// @Tags flow
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body reqdto.ChildInfoRequest true "Child"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Router /api/flow/child [put]
func (h *FlowHandler) SetChildInfo(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.ChildInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	session.Flow.SetChildInfo(req.ToDomain())
	h.respond(c, http.StatusOK, session)
}

// @Summary Submit booking
// @Description Creates the booking from the collected flow data
// @Tags flow
// @Produce json
// @Security SessionToken
// @Success 201 {object} booking.CreateBookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/flow/submit [post]
func (h *FlowHandler) Submit(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	resp, err := h.bookingUseCase.SubmitBooking(c.Request.Context(), session)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Pay for booking
// @Tags flow
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body reqdto.PaymentRequest true "Payment method"
// @Success 200 {object} booking.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/flow/payment [post]
func (h *FlowHandler) Pay(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	resp, err := h.bookingUseCase.PayBooking(c.Request.Context(), session, req.PaymentMethodID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Complete booking
// @Description Finishes the booking and clears the flow for the next one
// @Tags flow
// @Produce json
// @Security SessionToken
// @Success 200 {object} resdto.FlowResponse
// @Failure 409 {object} httperr.Response
// @Router /api/flow/complete [post]
func (h *FlowHandler) Complete(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.bookingUseCase.Complete(session); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, session)
}

func (h *FlowHandler) respond(c *gin.Context, status int, session *store.Session) {
	res, err := resdto.FromFlowSnapshot(session.Flow.Snapshot())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
