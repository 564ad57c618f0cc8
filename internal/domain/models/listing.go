package models

import "frontend/internal/domain"

// Transportation is a rentable vehicle listing. Priced per day.
type Transportation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	VehicleType string  `json:"vehicleType,omitempty"`
	Description string  `json:"description,omitempty"`
	PricePerDay float64 `json:"pricePerDay"`
	Capacity    int     `json:"capacity"`
	Location    string  `json:"location,omitempty"`
	IsVerified  bool    `json:"isVerified,omitempty"`
}

// Service adapts the listing into the dialog's pricing descriptor.
func (t Transportation) Service() Service {
	return Service{
		ID:        t.ID,
		Type:      domain.ServiceTransportation,
		Name:      t.Name,
		UnitPrice: t.PricePerDay,
		Capacity:  t.Capacity,
		Currency:  domain.DefaultCurrency,
	}
}

// Tour is a guided tour listing. Priced per person.
type Tour struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	PricePerPerson float64 `json:"pricePerPerson"`
	MaxGroupSize   int     `json:"maxGroupSize"`
	DurationDays   int     `json:"durationDays,omitempty"`
	Location       string  `json:"location,omitempty"`
	IsVerified     bool    `json:"isVerified,omitempty"`
}

func (t Tour) Service() Service {
	return Service{
		ID:        t.ID,
		Type:      domain.ServiceTour,
		Name:      t.Title,
		UnitPrice: t.PricePerPerson,
		Capacity:  t.MaxGroupSize,
		Currency:  domain.DefaultCurrency,
	}
}

// Accommodation is a lodging listing, shown on listing pages only;
// accommodation bookings go through a separate flow on the backend.
type Accommodation struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxGuests     int     `json:"maxGuests"`
	Location      string  `json:"location,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	IsVerified    bool    `json:"isVerified,omitempty"`
}
