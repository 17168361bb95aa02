//go:build unit

package apiclient_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/infra/apiclient"
	"kidcare-booking/internal/infra/mockapi"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        string
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mux      *http.ServeMux
	client   *apiclient.Client
	requests []recordedRequest
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.requests = append(s.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		s.mux.ServeHTTP(w, r)
	}))

	client, err := apiclient.NewClientWithHTTP(s.server.URL+"/api", &http.Client{Timeout: 2 * time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *ClientTestSuite) lastRequest() recordedRequest {
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *ClientTestSuite) TestGetFranchises() {
	s.Run("returns list in backend order", func() {
		s.mux.HandleFunc("GET /api/franchises", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, mockapi.Franchises())
		})

		got, err := s.client.GetFranchises(s.T().Context())
		s.Require().NoError(err)
		if diff := cmp.Diff(mockapi.Franchises(), got); diff != "" {
			s.Failf("franchises mismatch", "(-want +got):\n%s", diff)
		}
		s.Equal(http.MethodGet, s.lastRequest().Method)
	})
}

func (s *ClientTestSuite) TestEmptyFranchiseList() {
	s.mux.HandleFunc("GET /api/franchises", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []booking.Franchise{})
	})

	got, err := s.client.GetFranchises(s.T().Context())
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *ClientTestSuite) TestCheckAvailability() {
	s.mux.HandleFunc("GET /api/availability/{id}", func(w http.ResponseWriter, r *http.Request) {
		resp := mockapi.Availability()
		resp.FranchiseID = r.PathValue("id")
		resp.Date = r.URL.Query().Get("date")
		writeJSON(w, http.StatusOK, resp)
	})

	got, err := s.client.CheckAvailability(s.T().Context(), "1", "2024-01-15")
	s.Require().NoError(err)
	s.Equal("1", got.FranchiseID)
	s.Equal("2024-01-15", got.Date)
	s.Len(got.AvailableSlots, 3)

	req := s.lastRequest()
	s.Equal("/api/availability/1", req.Path)
	s.Equal("date=2024-01-15", req.RawQuery)
}

func (s *ClientTestSuite) TestPathSegmentsAreEscaped() {
	s.mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, booking.BookingDetails{BookingID: "x"})
	})

	_, err := s.client.GetBookingDetails(s.T().Context(), "a/b c")
	s.Require().NoError(err)
	s.Equal("/api/bookings/a%2Fb%20c", s.lastRequest().Path)
}

func (s *ClientTestSuite) TestCreateBooking() {
	paymentURL := "https://pay.example.com/bk_1"
	s.mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, booking.CreateBookingResponse{
			BookingID:       "bk_1",
			ReferenceNumber: "KC-0001",
			TotalAmount:     30,
			Currency:        "USD",
			PaymentRequired: true,
			PaymentURL:      &paymentURL,
		})
	})

	req := booking.CreateBookingRequest{
		FranchiseID:   "1",
		StartDatetime: "2024-01-15T09:00:00Z",
		EndDatetime:   "2024-01-15T11:00:00Z",
		CustomerInfo:  booking.CustomerInfo{Name: "Alex", Email: "alex@example.com", Phone: "555-0100", EmergencyContact: "555-0101"},
		ChildInfo:     booking.ChildInfo{Name: "Sam", Age: 5, PickupAuthorization: "Alex"},
	}
	got, err := s.client.CreateBooking(s.T().Context(), req)
	s.Require().NoError(err)
	s.Equal("bk_1", got.BookingID)
	s.True(got.PaymentRequired)
	s.Require().NotNil(got.PaymentURL)
	s.Equal(paymentURL, *got.PaymentURL)

	sent := s.lastRequest()
	s.Equal("application/json", sent.ContentType)
	var decoded booking.CreateBookingRequest
	s.Require().NoError(json.Unmarshal([]byte(sent.Body), &decoded))
	s.Equal(req, decoded)
}

func (s *ClientTestSuite) TestModifyBookingSendsOnlySuppliedFields() {
	s.mux.HandleFunc("PUT /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, booking.ModifyBookingResponse{BookingID: r.PathValue("id"), ChangesApplied: []string{"child_info.allergies"}})
	})

	allergies := "peanuts"
	got, err := s.client.ModifyBooking(s.T().Context(), "bk_1", booking.ModifyBookingRequest{
		ChildInfo: &booking.ChildInfoPatch{Allergies: &allergies},
	})
	s.Require().NoError(err)
	s.Equal("bk_1", got.BookingID)
	s.JSONEq(`{"child_info":{"allergies":"peanuts"}}`, s.lastRequest().Body)
}

func (s *ClientTestSuite) TestCancelPaymentAndQR() {
	s.mux.HandleFunc("DELETE /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, booking.CancelBookingResponse{BookingID: r.PathValue("id"), CancellationConfirmed: true})
	})
	s.mux.HandleFunc("POST /api/payments", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, booking.PaymentResponse{PaymentID: "pay_1", Status: booking.PaymentSucceeded, BookingConfirmed: true})
	})
	s.mux.HandleFunc("GET /api/bookings/{id}/qr", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, booking.QRCodeResponse{BookingID: r.PathValue("id"), QRCodeData: "data"})
	})

	cancelled, err := s.client.CancelBooking(s.T().Context(), "bk_1")
	s.Require().NoError(err)
	s.True(cancelled.CancellationConfirmed)
	s.Equal(http.MethodDelete, s.lastRequest().Method)

	paid, err := s.client.ProcessPayment(s.T().Context(), booking.PaymentRequest{BookingID: "bk_1", PaymentMethodID: "pm_card"})
	s.Require().NoError(err)
	s.Equal(booking.PaymentSucceeded, paid.Status)
	s.JSONEq(`{"booking_id":"bk_1","payment_method_id":"pm_card"}`, s.lastRequest().Body)

	qr, err := s.client.GetBookingQRCode(s.T().Context(), "bk_1")
	s.Require().NoError(err)
	s.Equal("data", qr.QRCodeData)
	s.Equal("/api/bookings/bk_1/qr", s.lastRequest().Path)
}

func (s *ClientTestSuite) TestEmptySuccessBody() {
	s.mux.HandleFunc("DELETE /api/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cancelled, err := s.client.CancelBooking(s.T().Context(), "bk_1")
	s.Require().NoError(err)
	s.Equal(booking.CancelBookingResponse{}, *cancelled)
}

func (s *ClientTestSuite) TestBackendErrorIsNormalized() {
	s.mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error_code": "SLOT_UNAVAILABLE",
			"message":    "The selected time slot is no longer available",
			"details":    map[string]any{"slot": "09:00"},
		})
	})

	_, err := s.client.CreateBooking(s.T().Context(), booking.CreateBookingRequest{FranchiseID: "1"})
	s.Require().Error(err)

	apiErr := infra.AsAPIError(err)
	s.Equal(infra.KindBackend, apiErr.Kind)
	s.Equal(http.StatusUnprocessableEntity, apiErr.Status)
	s.Equal("SLOT_UNAVAILABLE", apiErr.Code)
	s.Equal("The selected time slot is no longer available", apiErr.Message)
	s.Equal(map[string]any{"slot": "09:00"}, apiErr.Details)
	s.True(infra.IsCode(err, "SLOT_UNAVAILABLE"))
}

func (s *ClientTestSuite) TestUnstructuredErrorFallsBack() {
	s.mux.HandleFunc("GET /api/franchises", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := s.client.GetFranchises(s.T().Context())
	apiErr := infra.AsAPIError(err)
	s.Equal(infra.KindUnknown, apiErr.Kind)
	s.Equal(infra.CodeUnknownError, apiErr.Code)
	s.Equal(http.StatusBadGateway, apiErr.Status)
	s.Contains(apiErr.Message, "Bad Gateway")
}

func (s *ClientTestSuite) TestMalformedSuccessBody() {
	s.mux.HandleFunc("GET /api/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := s.client.GetBookingDetails(s.T().Context(), "bk_1")
	s.True(infra.IsKind(err, infra.KindUnknown))
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := apiclient.NewClientWithHTTP(baseURL, &http.Client{Timeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = client.GetFranchises(t.Context())
	require.Error(t, err)
	apiErr := infra.AsAPIError(err)
	assert.Equal(t, infra.KindTransport, apiErr.Kind)
	assert.Equal(t, infra.CodeNetworkError, apiErr.Code)
	assert.NotEmpty(t, apiErr.Message)
}

func TestTimeoutIsTransportFailure(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := apiclient.NewClientWithHTTP(server.URL, &http.Client{Timeout: 50 * time.Millisecond}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = client.GetFranchises(t.Context())
	apiErr := infra.AsAPIError(err)
	assert.Equal(t, infra.KindTransport, apiErr.Kind)
	assert.Equal(t, "request timed out", apiErr.Message)
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := apiclient.NewClientWithHTTP("/relative", &http.Client{}, slog.Default())
	assert.Error(t, err)
}
