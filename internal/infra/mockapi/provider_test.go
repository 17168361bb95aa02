//go:build unit

package mockapi_test

import (
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/infra/mockapi"
	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newProvider() *mockapi.Provider {
	return mockapi.NewProvider(clock.NewMockClock(now))
}

func validRequest() booking.CreateBookingRequest {
	return booking.CreateBookingRequest{
		FranchiseID:   "1",
		StartDatetime: "2024-01-15T09:00:00Z",
		EndDatetime:   "2024-01-15T11:00:00Z",
		CustomerInfo:  booking.CustomerInfo{Name: "Alex Doe", Email: "alex@example.com", Phone: "555-0100", EmergencyContact: "555-0199"},
		ChildInfo:     booking.ChildInfo{Name: "Sam Doe", Age: 5, PickupAuthorization: "Alex Doe"},
	}
}

func TestCheckAvailabilityFixture(t *testing.T) {
	p := newProvider()

	got, err := p.CheckAvailability(t.Context(), "1", "2024-01-15")
	require.NoError(t, err)

	if diff := cmp.Diff(mockapi.Availability(), *got); diff != "" {
		t.Fatalf("fixture mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.AvailableSlots, 3)
	assert.Equal(t, 15.00, got.Pricing.StandardRate)
	assert.Equal(t, 22.50, got.Pricing.PeakHourRate)
}

func TestCheckAvailabilityGenerated(t *testing.T) {
	p := newProvider()

	t.Run("open day has hourly slots with peak pricing", func(t *testing.T) {
		got, err := p.CheckAvailability(t.Context(), "2", "2024-01-16")
		require.NoError(t, err)
		assert.Equal(t, "2", got.FranchiseID)
		require.Len(t, got.AvailableSlots, 12) // 07:00-19:00

		for _, slot := range got.AvailableSlots {
			if slot.StartTime == "16:00" || slot.StartTime == "17:00" {
				assert.True(t, slot.IsPeakHour, slot.StartTime)
				assert.Equal(t, 25.00, slot.Rate)
			} else {
				assert.False(t, slot.IsPeakHour, slot.StartTime)
				assert.Equal(t, 18.00, slot.Rate)
			}
		}
	})

	t.Run("closed day has no slots", func(t *testing.T) {
		got, err := p.CheckAvailability(t.Context(), "1", "2024-01-14") // Sunday
		require.NoError(t, err)
		assert.NotNil(t, got.AvailableSlots)
		assert.Empty(t, got.AvailableSlots)
	})

	t.Run("unknown franchise", func(t *testing.T) {
		_, err := p.CheckAvailability(t.Context(), "99", "2024-01-15")
		assert.True(t, infra.IsCode(err, "FRANCHISE_NOT_FOUND"))
		assert.Equal(t, http.StatusNotFound, infra.AsAPIError(err).Status)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := p.CheckAvailability(t.Context(), "1", "15/01/2024")
		assert.True(t, infra.IsCode(err, "INVALID_DATE"))
	})
}

func TestBookingLifecycle(t *testing.T) {
	p := newProvider()
	ctx := t.Context()

	created, err := p.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.BookingID)
	assert.NotEmpty(t, created.ReferenceNumber)
	assert.Equal(t, 30.00, created.TotalAmount) // 2h * 15.00
	assert.Equal(t, "USD", created.Currency)
	assert.True(t, created.PaymentRequired)
	require.NotNil(t, created.PaymentURL)

	id, ok := p.FindByReference(created.ReferenceNumber)
	require.True(t, ok)
	assert.Equal(t, created.BookingID, id)

	details, err := p.GetBookingDetails(ctx, created.BookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, details.BookingStatus)
	assert.Equal(t, booking.PaymentPending, details.PaymentStatus)
	assert.Equal(t, 2.0, details.DurationHours)
	assert.Equal(t, "Downtown Kids Care", details.FranchiseInfo.Name)
	assert.Equal(t, now.Format(time.RFC3339), details.CreatedAt)

	paid, err := p.ProcessPayment(ctx, booking.PaymentRequest{BookingID: created.BookingID, PaymentMethodID: "pm_card_visa"})
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentSucceeded, paid.Status)
	assert.True(t, paid.BookingConfirmed)

	details, err = p.GetBookingDetails(ctx, created.BookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, details.BookingStatus)
	assert.Equal(t, booking.PaymentCompleted, details.PaymentStatus)
	require.NotNil(t, details.QRCodeURL)

	modified, err := p.ModifyBooking(ctx, created.BookingID, booking.ModifyBookingRequest{
		EndDatetime: ptr.To("2024-01-15T12:00:00Z"),
		ChildInfo:   &booking.ChildInfoPatch{Allergies: ptr.To("peanuts")},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"end_datetime", "child_info.allergies"}, modified.ChangesApplied)
	assert.Equal(t, 15.00, modified.PriceDifference)
	assert.Equal(t, 45.00, modified.NewTotalAmount)
	assert.True(t, modified.AdditionalPaymentRequired)

	details, err = p.GetBookingDetails(ctx, created.BookingID)
	require.NoError(t, err)
	require.NotNil(t, details.ChildInfo.Allergies)
	assert.Equal(t, "peanuts", *details.ChildInfo.Allergies)
	assert.Equal(t, "Sam Doe", details.ChildInfo.Name)

	qr, err := p.GetBookingQRCode(ctx, created.BookingID)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(qr.QRCodeData)
	require.NoError(t, err)
	assert.Equal(t, created.BookingID, string(decoded))

	cancelled, err := p.CancelBooking(ctx, created.BookingID)
	require.NoError(t, err)
	assert.True(t, cancelled.CancellationConfirmed)
	assert.Equal(t, 45.00, cancelled.RefundAmount)
	assert.Equal(t, "2024-01-15", cancelled.EstimatedRefundDate)

	_, err = p.CancelBooking(ctx, created.BookingID)
	assert.True(t, infra.IsCode(err, "BOOKING_ALREADY_CANCELLED"))

	_, err = p.ModifyBooking(ctx, created.BookingID, booking.ModifyBookingRequest{EndDatetime: ptr.To("2024-01-15T13:00:00Z")})
	assert.True(t, infra.IsCode(err, "BOOKING_CANCELLED"))
}

func TestCreateBookingErrors(t *testing.T) {
	p := newProvider()

	t.Run("unknown franchise", func(t *testing.T) {
		req := validRequest()
		req.FranchiseID = "404"
		_, err := p.CreateBooking(t.Context(), req)
		assert.True(t, infra.IsKind(err, infra.KindBackend))
		assert.True(t, infra.IsCode(err, "FRANCHISE_NOT_FOUND"))
	})

	t.Run("inverted window", func(t *testing.T) {
		req := validRequest()
		req.StartDatetime, req.EndDatetime = req.EndDatetime, req.StartDatetime
		_, err := p.CreateBooking(t.Context(), req)
		assert.True(t, infra.IsCode(err, "INVALID_BOOKING_WINDOW"))
	})

	t.Run("peak start uses peak rate", func(t *testing.T) {
		req := validRequest()
		req.StartDatetime = "2024-01-15T16:00:00Z"
		req.EndDatetime = "2024-01-15T17:00:00Z"
		created, err := p.CreateBooking(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, 22.50, created.TotalAmount)
	})
}

func TestDeclinedPaymentAndUnknownBooking(t *testing.T) {
	p := newProvider()
	created, err := p.CreateBooking(t.Context(), validRequest())
	require.NoError(t, err)

	paid, err := p.ProcessPayment(t.Context(), booking.PaymentRequest{BookingID: created.BookingID, PaymentMethodID: mockapi.DeclinedPaymentMethod})
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentResultFailed, paid.Status)
	assert.False(t, paid.BookingConfirmed)

	cancelled, err := p.CancelBooking(t.Context(), created.BookingID)
	require.NoError(t, err)
	assert.Zero(t, cancelled.RefundAmount)

	for _, call := range []func() error{
		func() error { _, err := p.GetBookingDetails(t.Context(), "missing"); return err },
		func() error { _, err := p.GetBookingQRCode(t.Context(), "missing"); return err },
		func() error {
			_, err := p.ProcessPayment(t.Context(), booking.PaymentRequest{BookingID: "missing", PaymentMethodID: "pm"})
			return err
		},
	} {
		assert.True(t, infra.IsCode(call(), "BOOKING_NOT_FOUND"))
	}
}
