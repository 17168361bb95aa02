package request

import (
	"strings"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/pkg/ptr"
)

type SelectFranchiseRequest struct {
	FranchiseID string `json:"franchise_id" binding:"required"`
}

type SelectDateTimeRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (r SelectDateTimeRequest) ToDomain() (booking.DateTimeRange, error) {
	return booking.NewDateTimeRange(strings.TrimSpace(r.Start), strings.TrimSpace(r.End))
}

type CustomerInfoRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	EmergencyContact string `json:"emergency_contact" binding:"required"`
}

func (r CustomerInfoRequest) ToDomain() booking.CustomerInfo {
	return booking.CustomerInfo{
		Name:             strings.TrimSpace(r.Name),
		Email:            strings.TrimSpace(r.Email),
		Phone:            strings.TrimSpace(r.Phone),
		EmergencyContact: strings.TrimSpace(r.EmergencyContact),
	}
}

// ChildInfoRequest takes Age as a pointer so that infants (age 0) pass the
// required check.
type ChildInfoRequest struct {
	Name                string  `json:"name" binding:"required"`
	Age                 *int    `json:"age" binding:"required,min=0,max=17"`
	SpecialNeeds        *string `json:"special_needs,omitempty"`
	Allergies           *string `json:"allergies,omitempty"`
	PickupAuthorization string  `json:"pickup_authorization" binding:"required"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

func (r ChildInfoRequest) ToDomain() booking.ChildInfo {
	return booking.ChildInfo{
		Name:                strings.TrimSpace(r.Name),
		Age:                 *r.Age,
		SpecialNeeds:        trimOptional(r.SpecialNeeds),
		Allergies:           trimOptional(r.Allergies),
		PickupAuthorization: strings.TrimSpace(r.PickupAuthorization),
		SpecialInstructions: trimOptional(r.SpecialInstructions),
	}
}

type PaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr.NonEmpty(strings.TrimSpace(*s))
}
