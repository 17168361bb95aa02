package mockapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/patch"
	"kidcare-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Peak pricing applies to bookings starting in [peakStartHour, peakEndHour).
const (
	peakStartHour   = 16
	peakEndHour     = 18
	defaultCapacity = 5
	refundWindow    = 24 * time.Hour
	refundLeadDays  = 5

	DeclinedPaymentMethod = "pm_card_declined"
)

// Provider stands in for the booking backend during development. Bookings
// live in memory for the lifetime of the process.
type Provider struct {
	mu         sync.Mutex
	franchises []booking.Franchise
	bookings   map[string]*booking.BookingDetails
	franchise  map[string]string // booking id -> franchise id
	clock      clock.Clock
}

func NewProvider(clk clock.Clock) *Provider {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Provider{
		franchises: Franchises(),
		bookings:   make(map[string]*booking.BookingDetails),
		franchise:  make(map[string]string),
		clock:      clk,
	}
}

func (p *Provider) GetFranchises(_ context.Context) ([]booking.Franchise, error) {
	return Franchises(), nil
}

func (p *Provider) CheckAvailability(_ context.Context, franchiseID, date string) (*booking.AvailabilityResponse, error) {
	f, ok := p.findFranchise(franchiseID)
	if !ok {
		return nil, franchiseNotFound(franchiseID)
	}
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, backendError(http.StatusBadRequest, "INVALID_DATE", err.Error(), map[string]any{"date": date})
	}

	fixture := Availability()
	if franchiseID == fixture.FranchiseID && date == fixture.Date {
		return &fixture, nil
	}

	resp := &booking.AvailabilityResponse{
		FranchiseID:    franchiseID,
		Date:           date,
		OperatingHours: booking.DailyHours{Open: f.OperatingHours.OpenTime, Close: f.OperatingHours.CloseTime},
		AvailableSlots: []booking.AvailabilitySlot{},
		Pricing:        f.Pricing,
	}
	if !f.OpensOn(isoWeekday(day)) {
		return resp, nil
	}

	open, _ := time.Parse("15:04", f.OperatingHours.OpenTime)
	closing, _ := time.Parse("15:04", f.OperatingHours.CloseTime)
	for h := open.Hour(); h < closing.Hour(); h++ {
		peak := isPeak(h)
		rate := f.Pricing.StandardRate
		if peak {
			rate = f.Pricing.PeakHourRate
		}
		resp.AvailableSlots = append(resp.AvailableSlots, booking.AvailabilitySlot{
			StartTime:         fmt.Sprintf("%02d:00", h),
			EndTime:           fmt.Sprintf("%02d:00", h+1),
			AvailableCapacity: defaultCapacity,
			Rate:              rate,
			IsPeakHour:        peak,
		})
	}
	return resp, nil
}

func (p *Provider) CreateBooking(_ context.Context, req booking.CreateBookingRequest) (*booking.CreateBookingResponse, error) {
	f, ok := p.findFranchise(req.FranchiseID)
	if !ok {
		return nil, franchiseNotFound(req.FranchiseID)
	}
	window, err := booking.NewDateTimeRange(req.StartDatetime, req.EndDatetime)
	if err != nil {
		return nil, backendError(http.StatusUnprocessableEntity, "INVALID_BOOKING_WINDOW", err.Error(), nil)
	}
	total, err := quote(f, window)
	if err != nil {
		return nil, err
	}

	id := "bk_" + uuid.NewString()
	reference := "KC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	details := &booking.BookingDetails{
		BookingID:       id,
		ReferenceNumber: reference,
		FranchiseInfo:   booking.FranchiseInfo{Name: f.Name, Address: f.Address + ", " + f.City, Phone: franchisePhone},
		BookingStatus:   booking.StatusPending,
		StartDatetime:   window.Start,
		EndDatetime:     window.End,
		DurationHours:   window.Duration().Hours(),
		TotalAmount:     total,
		Currency:        f.Pricing.Currency,
		PaymentStatus:   booking.PaymentPending,
		CustomerInfo:    req.CustomerInfo,
		ChildInfo:       req.ChildInfo,
		CreatedAt:       p.clock.Now().UTC().Format(time.RFC3339),
	}

	p.mu.Lock()
	p.bookings[id] = details
	p.franchise[id] = f.ID
	p.mu.Unlock()

	return &booking.CreateBookingResponse{
		BookingID:       id,
		ReferenceNumber: reference,
		TotalAmount:     total,
		Currency:        f.Pricing.Currency,
		PaymentRequired: true,
		PaymentURL:      ptr.To(paymentURL(id)),
	}, nil
}

func (p *Provider) GetBookingDetails(_ context.Context, bookingID string) (*booking.BookingDetails, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.bookings[bookingID]
	if !ok {
		return nil, bookingNotFound(bookingID)
	}
	out := *b
	return &out, nil
}

// FindByReference supports the lookup view in development.
func (p *Provider) FindByReference(reference string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, b := range p.bookings {
		if strings.EqualFold(b.ReferenceNumber, reference) {
			return id, true
		}
	}
	return "", false
}

func (p *Provider) ModifyBooking(_ context.Context, bookingID string, changes booking.ModifyBookingRequest) (*booking.ModifyBookingResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.bookings[bookingID]
	if !ok {
		return nil, bookingNotFound(bookingID)
	}
	if b.BookingStatus == booking.StatusCancelled {
		return nil, backendError(http.StatusConflict, "BOOKING_CANCELLED", "Cancelled bookings cannot be modified", nil)
	}
	f, _ := p.findFranchiseLocked(p.franchise[bookingID])

	var applied []string
	window, err := booking.NewDateTimeRange(
		patch.Coalesce(changes.StartDatetime, b.StartDatetime),
		patch.Coalesce(changes.EndDatetime, b.EndDatetime),
	)
	if err != nil {
		return nil, backendError(http.StatusUnprocessableEntity, "INVALID_BOOKING_WINDOW", err.Error(), nil)
	}
	if window.Start != b.StartDatetime {
		applied = append(applied, "start_datetime")
	}
	if window.End != b.EndDatetime {
		applied = append(applied, "end_datetime")
	}

	child := b.ChildInfo
	if c := changes.ChildInfo; c != nil {
		if patch.Apply(&child.Name, c.Name) {
			applied = append(applied, "child_info.name")
		}
		if patch.Apply(&child.Age, c.Age) {
			applied = append(applied, "child_info.age")
		}
		if patch.Apply(&child.PickupAuthorization, c.PickupAuthorization) {
			applied = append(applied, "child_info.pickup_authorization")
		}
		if c.SpecialNeeds != nil {
			child.SpecialNeeds = ptr.To(*c.SpecialNeeds)
			applied = append(applied, "child_info.special_needs")
		}
		if c.Allergies != nil {
			child.Allergies = ptr.To(*c.Allergies)
			applied = append(applied, "child_info.allergies")
		}
		if c.SpecialInstructions != nil {
			child.SpecialInstructions = ptr.To(*c.SpecialInstructions)
			applied = append(applied, "child_info.special_instructions")
		}
	}

	total, err := quote(f, window)
	if err != nil {
		return nil, err
	}
	diff := roundCents(total - b.TotalAmount)

	b.StartDatetime, b.EndDatetime = window.Start, window.End
	b.DurationHours = window.Duration().Hours()
	b.ChildInfo = child
	b.TotalAmount = total

	resp := &booking.ModifyBookingResponse{
		BookingID:                 bookingID,
		ChangesApplied:            applied,
		PriceDifference:           diff,
		NewTotalAmount:            total,
		AdditionalPaymentRequired: diff > 0 && b.PaymentStatus == booking.PaymentCompleted,
	}
	if resp.ChangesApplied == nil {
		resp.ChangesApplied = []string{}
	}
	if resp.AdditionalPaymentRequired {
		resp.PaymentURL = ptr.To(paymentURL(bookingID))
	}
	return resp, nil
}

func (p *Provider) CancelBooking(_ context.Context, bookingID string) (*booking.CancelBookingResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.bookings[bookingID]
	if !ok {
		return nil, bookingNotFound(bookingID)
	}
	if b.BookingStatus == booking.StatusCancelled {
		return nil, backendError(http.StatusConflict, "BOOKING_ALREADY_CANCELLED", "Booking is already cancelled", nil)
	}

	now := p.clock.Now()
	refund, policy := 0.0, "no_payment_captured"
	if b.PaymentStatus == booking.PaymentCompleted {
		start, _ := time.Parse(time.RFC3339, b.StartDatetime)
		if start.Sub(now) >= refundWindow {
			refund, policy = b.TotalAmount, "full_refund_24h_notice"
		} else {
			refund, policy = roundCents(b.TotalAmount/2), "partial_refund_late_cancellation"
		}
		b.PaymentStatus = booking.PaymentRefunded
	}
	b.BookingStatus = booking.StatusCancelled

	return &booking.CancelBookingResponse{
		BookingID:             bookingID,
		CancellationConfirmed: true,
		RefundAmount:          refund,
		RefundPolicyApplied:   policy,
		EstimatedRefundDate:   now.AddDate(0, 0, refundLeadDays).Format(booking.DateLayout),
	}, nil
}

func (p *Provider) ProcessPayment(_ context.Context, req booking.PaymentRequest) (*booking.PaymentResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.bookings[req.BookingID]
	if !ok {
		return nil, bookingNotFound(req.BookingID)
	}
	if b.BookingStatus == booking.StatusCancelled {
		return nil, backendError(http.StatusConflict, "BOOKING_CANCELLED", "Cancelled bookings cannot be paid", nil)
	}

	paymentID := "pay_" + uuid.NewString()
	if req.PaymentMethodID == DeclinedPaymentMethod {
		b.PaymentStatus = booking.PaymentFailed
		return &booking.PaymentResponse{PaymentID: paymentID, Status: booking.PaymentResultFailed}, nil
	}

	b.PaymentStatus = booking.PaymentCompleted
	b.BookingStatus = booking.StatusConfirmed
	b.QRCodeURL = ptr.To(qrURL(req.BookingID))
	return &booking.PaymentResponse{
		PaymentID:        paymentID,
		Status:           booking.PaymentSucceeded,
		ClientSecret:     ptr.To(paymentID + "_secret"),
		BookingConfirmed: true,
	}, nil
}

func (p *Provider) GetBookingQRCode(_ context.Context, bookingID string) (*booking.QRCodeResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.bookings[bookingID]; !ok {
		return nil, bookingNotFound(bookingID)
	}
	return &booking.QRCodeResponse{
		BookingID:  bookingID,
		QRCodeURL:  qrURL(bookingID),
		QRCodeData: base64.StdEncoding.EncodeToString([]byte(bookingID)),
	}, nil
}

func (p *Provider) findFranchise(id string) (booking.Franchise, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.findFranchiseLocked(id)
}

func (p *Provider) findFranchiseLocked(id string) (booking.Franchise, bool) {
	for _, f := range p.franchises {
		if f.ID == id {
			return f, true
		}
	}
	return booking.Franchise{}, false
}

// quote prices the whole window at the rate of its starting hour.
func quote(f booking.Franchise, window booking.DateTimeRange) (float64, error) {
	start, err := time.Parse(time.RFC3339, window.Start)
	if err != nil {
		return 0, backendError(http.StatusUnprocessableEntity, "INVALID_BOOKING_WINDOW", err.Error(), nil)
	}
	rate := f.Pricing.StandardRate
	if isPeak(start.Hour()) {
		rate = f.Pricing.PeakHourRate
	}
	return roundCents(window.Duration().Hours() * rate), nil
}

func isPeak(hour int) bool {
	return hour >= peakStartHour && hour < peakEndHour
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func paymentURL(bookingID string) string {
	return "https://payments.example.com/checkout/" + bookingID
}

func qrURL(bookingID string) string {
	return "https://qr.example.com/bookings/" + bookingID + ".png"
}

func backendError(status int, code, message string, details map[string]any) *infra.APIError {
	return infra.NewAPIError(infra.KindBackend, status, code, message, details)
}

func franchiseNotFound(id string) *infra.APIError {
	return backendError(http.StatusNotFound, "FRANCHISE_NOT_FOUND", "Franchise not found", map[string]any{"franchise_id": id})
}

func bookingNotFound(id string) *infra.APIError {
	return backendError(http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found", map[string]any{"booking_id": id})
}
