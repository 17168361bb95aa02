package mockapi

import "kidcare-booking/internal/domain/booking"

// Franchises returns a fresh copy of the development franchise list.
func Franchises() []booking.Franchise {
	return []booking.Franchise{
		{
			ID:         "1",
			Name:       "Downtown Kids Care",
			Address:    "123 Main St",
			City:       "Seattle",
			PostalCode: "98101",
			OperatingHours: booking.OperatingHours{
				OpenTime:      "08:00",
				CloseTime:     "18:00",
				OperatingDays: []int{1, 2, 3, 4, 5},
			},
			Pricing: booking.Pricing{
				StandardRate: 15.00,
				PeakHourRate: 22.50,
				Currency:     "USD",
			},
		},
		{
			ID:         "2",
			Name:       "Westside Childcare",
			Address:    "456 Oak Ave",
			City:       "Seattle",
			PostalCode: "98102",
			OperatingHours: booking.OperatingHours{
				OpenTime:      "07:00",
				CloseTime:     "19:00",
				OperatingDays: []int{1, 2, 3, 4, 5, 6},
			},
			Pricing: booking.Pricing{
				StandardRate: 18.00,
				PeakHourRate: 25.00,
				Currency:     "USD",
			},
		},
	}
}

// Availability returns the fixture for franchise "1" on 2024-01-15.
func Availability() booking.AvailabilityResponse {
	return booking.AvailabilityResponse{
		FranchiseID: "1",
		Date:        "2024-01-15",
		OperatingHours: booking.DailyHours{
			Open:  "08:00",
			Close: "18:00",
		},
		AvailableSlots: []booking.AvailabilitySlot{
			{StartTime: "09:00", EndTime: "10:00", AvailableCapacity: 5, Rate: 15.00, IsPeakHour: false},
			{StartTime: "10:00", EndTime: "11:00", AvailableCapacity: 3, Rate: 15.00, IsPeakHour: false},
			{StartTime: "15:00", EndTime: "16:00", AvailableCapacity: 2, Rate: 22.50, IsPeakHour: true},
		},
		Pricing: booking.Pricing{
			StandardRate: 15.00,
			PeakHourRate: 22.50,
			Currency:     "USD",
		},
	}
}

const franchisePhone = "(206) 555-0100"
