package request

import (
	"time"

	"kidcare-booking/internal/domain/booking"
)

type ChildInfoPatchRequest struct {
	Name                *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Age                 *int    `json:"age,omitempty" binding:"omitempty,min=0,max=17"`
	SpecialNeeds        *string `json:"special_needs,omitempty"`
	Allergies           *string `json:"allergies,omitempty"`
	PickupAuthorization *string `json:"pickup_authorization,omitempty" binding:"omitempty,min=1"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

// ModifyBookingRequest carries only the fields to change.
type ModifyBookingRequest struct {
	StartDatetime *string                `json:"start_datetime,omitempty"`
	EndDatetime   *string                `json:"end_datetime,omitempty"`
	ChildInfo     *ChildInfoPatchRequest `json:"child_info,omitempty"`
}

func (r ModifyBookingRequest) ToDomain() (booking.ModifyBookingRequest, error) {
	for _, v := range []*string{r.StartDatetime, r.EndDatetime} {
		if v == nil {
			continue
		}
		if _, err := time.Parse(time.RFC3339, *v); err != nil {
			return booking.ModifyBookingRequest{}, booking.ErrInvalidDatetime
		}
	}
	if r.StartDatetime != nil && r.EndDatetime != nil {
		if _, err := booking.NewDateTimeRange(*r.StartDatetime, *r.EndDatetime); err != nil {
			return booking.ModifyBookingRequest{}, err
		}
	}

	out := booking.ModifyBookingRequest{
		StartDatetime: r.StartDatetime,
		EndDatetime:   r.EndDatetime,
	}
	if c := r.ChildInfo; c != nil {
		out.ChildInfo = &booking.ChildInfoPatch{
			Name:                c.Name,
			Age:                 c.Age,
			SpecialNeeds:        c.SpecialNeeds,
			Allergies:           c.Allergies,
			PickupAuthorization: c.PickupAuthorization,
			SpecialInstructions: c.SpecialInstructions,
		}
	}
	return out, nil
}
