//go:build unit

package api_test

import (
	"bytes"
	"image/png"
	"net/http"
	"testing"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/handler/api"
	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/infra/mockapi"
	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/ptr"
	"kidcare-booking/internal/store"
	"kidcare-booking/tests/common/builder"
	"kidcare-booking/tests/common/httptest"
	"kidcare-booking/tests/common/sessiontest"
	"kidcare-booking/tests/common/testutil"
	usecasemock "kidcare-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockBookingUseCase
	session  *store.Session
	handler  *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUC)
	s.session = sessiontest.NewSession(mockapi.NewProvider(nil), clock.NewMockClock(sessiontest.Epoch))

	withSession := s.router.Group("", sessiontest.Inject(s.session))
	withSession.GET("/bookings/:id", s.handler.Get)
	withSession.PUT("/bookings/:id", s.handler.Modify)
	withSession.DELETE("/bookings/:id", s.handler.Cancel)
	withSession.GET("/bookings/:id/qr", s.handler.QRCode)
	withSession.GET("/lookup", s.handler.Lookup)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func notFound(id string) *infra.APIError {
	return infra.NewAPIError(infra.KindBackend, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found", map[string]any{"booking_id": id})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	details := builder.NewBookingBuilder().BuildDetails()

	s.Run("success: returns the backend record", func() {
		s.mockUC.EXPECT().GetBookingDetails(gomock.Any(), s.session, details.BookingID).Return(details, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+details.BookingID, nil, "")
		var res booking.BookingDetails
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(*details, res)
	})

	s.Run("error: backend 404 is relayed with its code", func() {
		s.mockUC.EXPECT().GetBookingDetails(gomock.Any(), gomock.Any(), "bk_missing").Return(nil, notFound("bk_missing")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_missing", nil, "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
		s.Equal("BOOKING_NOT_FOUND", body.Detail.ErrorCode)
		s.Equal("bk_missing", body.Detail.Details["booking_id"])
	})
}

// ================================================================================
// TestModify
// ================================================================================

func (s *BookingHandlerTestSuite) TestModify() {
	url := "/bookings/bk_1"
	resp := &booking.ModifyBookingResponse{BookingID: "bk_1", ChangesApplied: []string{"child_info"}, NewTotalAmount: 30}

	s.Run("success: forwards only supplied fields", func() {
		want := booking.ModifyBookingRequest{ChildInfo: &booking.ChildInfoPatch{Allergies: ptr.To("peanuts")}}
		s.mockUC.EXPECT().ModifyBooking(gomock.Any(), s.session, "bk_1", want).Return(resp, nil).Times(1)

		body := testutil.DtoMap(s.T(), map[string]any{}, testutil.Field("child_info.allergies", "peanuts"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		var res booking.ModifyBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]string{"child_info"}, res.ChangesApplied)
	})

	s.Run("success: new window", func() {
		want := booking.ModifyBookingRequest{
			StartDatetime: ptr.To("2024-01-16T09:00:00Z"),
			EndDatetime:   ptr.To("2024-01-16T12:00:00Z"),
		}
		s.mockUC.EXPECT().ModifyBooking(gomock.Any(), gomock.Any(), "bk_1", want).Return(resp, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{
			"start_datetime": "2024-01-16T09:00:00Z",
			"end_datetime":   "2024-01-16T12:00:00Z",
		}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	invalid := []struct {
		name string
		body map[string]any
	}{
		{name: "malformed datetime", body: map[string]any{"start_datetime": "tomorrow"}},
		{name: "inverted window", body: map[string]any{"start_datetime": "2024-01-16T12:00:00Z", "end_datetime": "2024-01-16T09:00:00Z"}},
		{name: "child age out of range", body: map[string]any{"child_info": map[string]any{"age": 18}}},
		{name: "empty child name", body: map[string]any{"child_info": map[string]any{"name": ""}}},
		{name: "no changes", body: map[string]any{}},
		{name: "empty child patch", body: map[string]any{"child_info": map[string]any{}}},
	}
	for _, tc := range invalid {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}

	s.Run("error: backend rejection is relayed", func() {
		apiErr := infra.NewAPIError(infra.KindBackend, http.StatusConflict, "MODIFICATION_NOT_ALLOWED", "Booking can no longer be modified", nil)
		s.mockUC.EXPECT().ModifyBooking(gomock.Any(), gomock.Any(), "bk_1", gomock.Any()).Return(nil, apiErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"child_info": map[string]any{"name": "Kim"}}, "")
		httptest.AssertBackendError(s.T(), rec, http.StatusConflict, "MODIFICATION_NOT_ALLOWED", "")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success", func() {
		s.mockUC.EXPECT().CancelBooking(gomock.Any(), s.session, "bk_1").
			Return(&booking.CancelBookingResponse{BookingID: "bk_1", CancellationConfirmed: true, RefundAmount: 30}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/bk_1", nil, "")
		var res booking.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.CancellationConfirmed)
		s.Equal(30.0, res.RefundAmount)
	})

	s.Run("error: unknown booking", func() {
		s.mockUC.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), "bk_x").Return(nil, notFound("bk_x")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/bk_x", nil, "")
		httptest.AssertBackendError(s.T(), rec, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	})
}

// ================================================================================
// TestQRCode
// ================================================================================

func (s *BookingHandlerTestSuite) TestQRCode() {
	qr := &booking.QRCodeResponse{BookingID: "bk_1", QRCodeURL: "https://example.com/qr/bk_1", QRCodeData: "KIDCARE:bk_1"}

	s.Run("success: JSON by default", func() {
		s.mockUC.EXPECT().GetBookingQRCode(gomock.Any(), s.session, "bk_1").Return(qr, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_1/qr", nil, "")
		var res booking.QRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(*qr, res)
	})

	s.Run("success: PNG when requested", func() {
		s.mockUC.EXPECT().GetBookingQRCode(gomock.Any(), gomock.Any(), "bk_1").Return(qr, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_1/qr?format=png&size=128", nil, "")
		s.Require().Equal(http.StatusOK, rec.Code)
		httptest.AssertContentType(s.T(), rec, "image/png")
		img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
		s.Require().NoError(err)
		s.Equal(128, img.Bounds().Dx())
	})

	s.Run("error: PNG without payload", func() {
		s.mockUC.EXPECT().GetBookingQRCode(gomock.Any(), gomock.Any(), "bk_1").
			Return(&booking.QRCodeResponse{BookingID: "bk_1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_1/qr?format=png", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "QR code data unavailable")
	})
}

// ================================================================================
// TestLookup
// ================================================================================

func (s *BookingHandlerTestSuite) TestLookup() {
	details := builder.NewBookingBuilder().BuildDetails()

	s.Run("success: trims the reference", func() {
		s.mockUC.EXPECT().LookupBooking(gomock.Any(), s.session, details.ReferenceNumber).Return(details, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lookup?reference=%20"+details.ReferenceNumber+"%20", nil, "")
		var res booking.BookingDetails
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(details.BookingID, res.BookingID)
	})

	s.Run("error: 400 without reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lookup?reference=%20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Reference is required")
	})
}
