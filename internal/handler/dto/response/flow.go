package response

import (
	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/navigation"
	"kidcare-booking/internal/store"

	"github.com/jinzhu/copier"
)

type FlowResponse struct {
	CurrentStep       int                    `json:"current_step"`
	TotalSteps        int                    `json:"total_steps"`
	IsComplete        bool                   `json:"is_complete"`
	ViewPath          string                 `json:"view_path"`
	SelectedFranchise *booking.Franchise     `json:"selected_franchise"`
	SelectedDateTime  *booking.DateTimeRange `json:"selected_date_time"`
	CustomerInfo      *booking.CustomerInfo  `json:"customer_info"`
	ChildInfo         *booking.ChildInfo     `json:"child_info"`
	BookingID         *string                `json:"booking_id"`
	PaymentStatus     *string                `json:"payment_status"`
}

func FromFlowSnapshot(snap store.FlowSnapshot) (*FlowResponse, error) {
	var res FlowResponse
	if err := copier.CopyWithOption(&res, &snap, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	res.TotalSteps = store.TotalSteps
	res.IsComplete = snap.IsComplete()
	res.ViewPath = navigation.PathForStep(snap.CurrentStep)
	return &res, nil
}
