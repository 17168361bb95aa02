package response

import (
	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/store"

	"github.com/jinzhu/copier"
)

type CatalogResponse struct {
	Franchises   []booking.Franchise           `json:"franchises"`
	Availability *booking.AvailabilityResponse `json:"availability"`
	Loading      bool                          `json:"loading"`
	Error        *string                       `json:"error"`
}

func FromCatalogSnapshot(snap store.CatalogSnapshot) (*CatalogResponse, error) {
	var res CatalogResponse
	if err := copier.CopyWithOption(&res, &snap, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Franchises == nil {
		res.Franchises = []booking.Franchise{}
	}
	return &res, nil
}
