//go:build unit || e2e

package builder

import (
	"kidcare-booking/internal/domain/booking"
	reqdto "kidcare-booking/internal/handler/dto/request"
	"kidcare-booking/internal/infra/mockapi"
	"kidcare-booking/internal/pkg/ptr"
	"kidcare-booking/internal/store"
)

type BookingBuilder struct {
	Franchise           booking.Franchise
	Start               string
	End                 string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	EmergencyContact    string
	ChildName           string
	ChildAge            int
	Allergies           *string
	PickupAuthorization string
	BookingID           string
	ReferenceNumber     string
	TotalAmount         float64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Franchise:           mockapi.Franchises()[0],
		Start:               "2024-01-15T09:00:00Z",
		End:                 "2024-01-15T11:00:00Z",
		CustomerName:        "Alex Doe",
		CustomerEmail:       "alex@example.com",
		CustomerPhone:       "555-0100",
		EmergencyContact:    "Sam Doe 555-0101",
		ChildName:           "Kim",
		ChildAge:            4,
		PickupAuthorization: "Alex Doe",
		BookingID:           "bk_test",
		ReferenceNumber:     "KC-TEST0001",
		TotalAmount:         30,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Request DTOs

func (b *BookingBuilder) BuildSelectFranchiseRequest() reqdto.SelectFranchiseRequest {
	return reqdto.SelectFranchiseRequest{FranchiseID: b.Franchise.ID}
}

func (b *BookingBuilder) BuildSelectDateTimeRequest() reqdto.SelectDateTimeRequest {
	return reqdto.SelectDateTimeRequest{Start: b.Start, End: b.End}
}

func (b *BookingBuilder) BuildCustomerInfoRequest() reqdto.CustomerInfoRequest {
	return reqdto.CustomerInfoRequest{
		Name:             b.CustomerName,
		Email:            b.CustomerEmail,
		Phone:            b.CustomerPhone,
		EmergencyContact: b.EmergencyContact,
	}
}

func (b *BookingBuilder) BuildChildInfoRequest() reqdto.ChildInfoRequest {
	return reqdto.ChildInfoRequest{
		Name:                b.ChildName,
		Age:                 ptr.To(b.ChildAge),
		Allergies:           b.Allergies,
		PickupAuthorization: b.PickupAuthorization,
	}
}

// Domain values

func (b *BookingBuilder) BuildCustomerInfo() booking.CustomerInfo {
	return b.BuildCustomerInfoRequest().ToDomain()
}

func (b *BookingBuilder) BuildChildInfo() booking.ChildInfo {
	return b.BuildChildInfoRequest().ToDomain()
}

func (b *BookingBuilder) BuildCreateResponse() *booking.CreateBookingResponse {
	return &booking.CreateBookingResponse{
		BookingID:       b.BookingID,
		ReferenceNumber: b.ReferenceNumber,
		TotalAmount:     b.TotalAmount,
		Currency:        b.Franchise.Pricing.Currency,
		PaymentRequired: true,
	}
}

func (b *BookingBuilder) BuildDetails() *booking.BookingDetails {
	return &booking.BookingDetails{
		BookingID:       b.BookingID,
		ReferenceNumber: b.ReferenceNumber,
		FranchiseInfo: booking.FranchiseInfo{
			Name:    b.Franchise.Name,
			Address: b.Franchise.Address + ", " + b.Franchise.City,
		},
		BookingStatus: booking.StatusConfirmed,
		StartDatetime: b.Start,
		EndDatetime:   b.End,
		DurationHours: 2,
		TotalAmount:   b.TotalAmount,
		Currency:      b.Franchise.Pricing.Currency,
		PaymentStatus: booking.PaymentCompleted,
		CustomerInfo:  b.BuildCustomerInfo(),
		ChildInfo:     b.BuildChildInfo(),
	}
}

// FillFlow writes every field the submit step needs into the session.
func (b *BookingBuilder) FillFlow(s *store.Session) {
	s.Flow.SetFranchise(b.Franchise)
	s.Flow.SetDateTime(booking.DateTimeRange{Start: b.Start, End: b.End})
	s.Flow.SetCustomerInfo(b.BuildCustomerInfo())
	s.Flow.SetChildInfo(b.BuildChildInfo())
}
