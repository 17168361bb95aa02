package booking

type OperatingHours struct {
	OpenTime      string `json:"open_time"`
	CloseTime     string `json:"close_time"`
	OperatingDays []int  `json:"operating_days"`
}

type Pricing struct {
	StandardRate float64 `json:"standard_rate"`
	PeakHourRate float64 `json:"peak_hour_rate"`
	Currency     string  `json:"currency"`
}

// Franchise is replaced wholesale on every refetch.
type Franchise struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	PostalCode     string         `json:"postal_code"`
	OperatingHours OperatingHours `json:"operating_hours"`
	Pricing        Pricing        `json:"pricing"`
}

// OpensOn reports whether the franchise operates on the given ISO weekday
// (1 = Monday ... 7 = Sunday).
func (f Franchise) OpensOn(isoWeekday int) bool {
	for _, d := range f.OperatingHours.OperatingDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

type AvailabilitySlot struct {
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	AvailableCapacity int     `json:"available_capacity"`
	Rate              float64 `json:"rate"`
	IsPeakHour        bool    `json:"is_peak_hour"`
}

type DailyHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// AvailabilityResponse is scoped to one (franchise, date) query.
type AvailabilityResponse struct {
	FranchiseID    string             `json:"franchise_id"`
	Date           string             `json:"date"`
	OperatingHours DailyHours         `json:"operating_hours"`
	AvailableSlots []AvailabilitySlot `json:"available_slots"`
	Pricing        Pricing            `json:"pricing"`
}
