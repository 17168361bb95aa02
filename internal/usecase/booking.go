package usecase

import (
	"context"
	"log/slog"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/pkg/errs"
	"kidcare-booking/internal/store"
)

var (
	ErrIncompleteFlow = errs.ErrIncompleteFlow
	ErrNoBooking      = errs.ErrNoBooking
)

// BookingAPI is the outbound booking backend. The HTTP client and the
// in-memory development provider both satisfy it.
type BookingAPI interface {
	GetFranchises(ctx context.Context) ([]booking.Franchise, error)
	CheckAvailability(ctx context.Context, franchiseID, date string) (*booking.AvailabilityResponse, error)
	CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (*booking.CreateBookingResponse, error)
	GetBookingDetails(ctx context.Context, bookingID string) (*booking.BookingDetails, error)
	ModifyBooking(ctx context.Context, bookingID string, changes booking.ModifyBookingRequest) (*booking.ModifyBookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*booking.CancelBookingResponse, error)
	ProcessPayment(ctx context.Context, req booking.PaymentRequest) (*booking.PaymentResponse, error)
	GetBookingQRCode(ctx context.Context, bookingID string) (*booking.QRCodeResponse, error)
}

// ReferenceResolver maps a customer-facing reference number to a booking id.
// Backends that cannot do this are queried with the reference as the id.
type ReferenceResolver interface {
	FindByReference(reference string) (string, bool)
}

type BookingUseCase interface {
	SubmitBooking(ctx context.Context, s *store.Session) (*booking.CreateBookingResponse, error)
	PayBooking(ctx context.Context, s *store.Session, paymentMethodID string) (*booking.PaymentResponse, error)
	GetBookingDetails(ctx context.Context, s *store.Session, bookingID string) (*booking.BookingDetails, error)
	ModifyBooking(ctx context.Context, s *store.Session, bookingID string, changes booking.ModifyBookingRequest) (*booking.ModifyBookingResponse, error)
	CancelBooking(ctx context.Context, s *store.Session, bookingID string) (*booking.CancelBookingResponse, error)
	GetBookingQRCode(ctx context.Context, s *store.Session, bookingID string) (*booking.QRCodeResponse, error)
	LookupBooking(ctx context.Context, s *store.Session, reference string) (*booking.BookingDetails, error)
	Complete(s *store.Session) error
}

type bookingUseCaseImpl struct {
	api    BookingAPI
	logger *slog.Logger
}

func NewBookingUseCase(api BookingAPI, logger *slog.Logger) BookingUseCase {
	return &bookingUseCaseImpl{api: api, logger: logger}
}

func (u *bookingUseCaseImpl) SubmitBooking(ctx context.Context, s *store.Session) (*booking.CreateBookingResponse, error) {
	snap := s.Flow.Snapshot()
	if snap.SelectedFranchise == nil || snap.SelectedDateTime == nil || snap.CustomerInfo == nil || snap.ChildInfo == nil {
		return nil, errs.Mark(errs.New("franchise, datetime, customer and child must be selected"), ErrIncompleteFlow)
	}

	req := booking.CreateBookingRequest{
		FranchiseID:   snap.SelectedFranchise.ID,
		StartDatetime: snap.SelectedDateTime.Start,
		EndDatetime:   snap.SelectedDateTime.End,
		CustomerInfo:  *snap.CustomerInfo,
		ChildInfo:     *snap.ChildInfo,
	}
	resp, err := track(ctx, s, func(ctx context.Context) (*booking.CreateBookingResponse, error) {
		return u.api.CreateBooking(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.Flow.SetBookingID(resp.BookingID)
	s.UI.AddNotification("Booking "+resp.ReferenceNumber+" created", store.NotifySuccess)
	u.logger.Info("Booking submitted",
		slog.String("session_id", s.ID.String()),
		slog.String("booking_id", resp.BookingID))
	return resp, nil
}

func (u *bookingUseCaseImpl) PayBooking(ctx context.Context, s *store.Session, paymentMethodID string) (*booking.PaymentResponse, error) {
	snap := s.Flow.Snapshot()
	if snap.BookingID == nil {
		return nil, errs.Mark(errs.New("submit the booking before paying"), ErrNoBooking)
	}

	req := booking.PaymentRequest{BookingID: *snap.BookingID, PaymentMethodID: paymentMethodID}
	resp, err := track(ctx, s, func(ctx context.Context) (*booking.PaymentResponse, error) {
		return u.api.ProcessPayment(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.Flow.SetPaymentStatus(string(resp.Status))
	switch resp.Status {
	case booking.PaymentSucceeded:
		s.UI.AddNotification("Payment completed", store.NotifySuccess)
	case booking.PaymentRequiresAction:
		s.UI.AddNotification("Payment requires additional action", store.NotifyInfo)
	default:
		s.UI.AddNotification("Payment failed", store.NotifyError)
	}
	return resp, nil
}

func (u *bookingUseCaseImpl) GetBookingDetails(ctx context.Context, s *store.Session, bookingID string) (*booking.BookingDetails, error) {
	return track(ctx, s, func(ctx context.Context) (*booking.BookingDetails, error) {
		return u.api.GetBookingDetails(ctx, bookingID)
	})
}

// ModifyBooking forwards only the supplied fields.
func (u *bookingUseCaseImpl) ModifyBooking(ctx context.Context, s *store.Session, bookingID string, changes booking.ModifyBookingRequest) (*booking.ModifyBookingResponse, error) {
	resp, err := track(ctx, s, func(ctx context.Context) (*booking.ModifyBookingResponse, error) {
		return u.api.ModifyBooking(ctx, bookingID, changes)
	})
	if err != nil {
		return nil, err
	}
	s.UI.AddNotification("Booking updated", store.NotifySuccess)
	return resp, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, s *store.Session, bookingID string) (*booking.CancelBookingResponse, error) {
	resp, err := track(ctx, s, func(ctx context.Context) (*booking.CancelBookingResponse, error) {
		return u.api.CancelBooking(ctx, bookingID)
	})
	if err != nil {
		return nil, err
	}
	s.UI.AddNotification("Booking cancelled", store.NotifySuccess)
	u.logger.Info("Booking cancelled",
		slog.String("session_id", s.ID.String()),
		slog.String("booking_id", bookingID))
	return resp, nil
}

func (u *bookingUseCaseImpl) GetBookingQRCode(ctx context.Context, s *store.Session, bookingID string) (*booking.QRCodeResponse, error) {
	return track(ctx, s, func(ctx context.Context) (*booking.QRCodeResponse, error) {
		return u.api.GetBookingQRCode(ctx, bookingID)
	})
}

func (u *bookingUseCaseImpl) LookupBooking(ctx context.Context, s *store.Session, reference string) (*booking.BookingDetails, error) {
	bookingID := reference
	if r, ok := u.api.(ReferenceResolver); ok {
		if id, found := r.FindByReference(reference); found {
			bookingID = id
		}
	}
	return u.GetBookingDetails(ctx, s, bookingID)
}

// Complete finishes a paid-for or submitted booking and clears the flow for
// the next one.
func (u *bookingUseCaseImpl) Complete(s *store.Session) error {
	if s.Flow.Snapshot().BookingID == nil {
		return errs.Mark(errs.New("nothing to complete"), ErrNoBooking)
	}
	s.Flow.Reset()
	return nil
}

// track wraps one backend call with the session's loading flag. Failures are
// normalized, recorded on the session and surfaced as an error notification.
// The call is detached from ctx cancellation so an issued request always
// settles and its result always reaches the session.
func track[T any](ctx context.Context, s *store.Session, call func(context.Context) (T, error)) (T, error) {
	s.UI.SetLoading(true)
	defer s.UI.SetLoading(false)

	resp, err := call(context.WithoutCancel(ctx))
	if err != nil {
		apiErr := infra.AsAPIError(err)
		s.UI.AddError(*apiErr)
		s.UI.AddNotification(apiErr.Message, store.NotifyError)
		var zero T
		return zero, apiErr
	}
	return resp, nil
}
