package models

import "frontend/internal/domain"

// Service describes the listing a booking dialog was opened with. It is
// read from the listings pages and bounds draft validation.
type Service struct {
	ID        string             `json:"id"`
	Type      domain.ServiceType `json:"type"`
	Name      string             `json:"name"`
	UnitPrice float64            `json:"unitPrice"`
	Capacity  int                `json:"capacity"`
	Currency  string             `json:"currency"`
}

// BookingDraft is the dialog-scoped form state for a not-yet-submitted
// reservation. It is owned by one dialog instance and discarded on close.
type BookingDraft struct {
	ServiceType     domain.ServiceType `json:"serviceType"`
	ServiceID       string             `json:"serviceId"`
	StartDate       string             `json:"startDate"` // YYYY-MM-DD
	EndDate         string             `json:"endDate"`   // YYYY-MM-DD
	NumberOfPeople  int                `json:"numberOfPeople"`
	SpecialRequests string             `json:"specialRequests"`

	// Per-service extras, folded into the special-requests text on submit.
	FlightNumber   string `json:"flightNumber,omitempty"`
	PickupAddress  string `json:"pickupAddress,omitempty"`
	DropoffAddress string `json:"dropoffAddress,omitempty"`
}

// NewDraft seeds the form defaults for a freshly opened dialog.
func NewDraft(svc Service) BookingDraft {
	return BookingDraft{
		ServiceType:    svc.Type,
		ServiceID:      svc.ID,
		NumberOfPeople: 1,
	}
}

// Booking is the persisted record the backend returns after creation.
type Booking struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId,omitempty"`
	ServiceType     domain.ServiceType `json:"serviceType"`
	ServiceID       string             `json:"serviceId"`
	ServiceName     string             `json:"serviceName,omitempty"`
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
	NumberOfPeople  int                `json:"numberOfPeople"`
	SpecialRequests string             `json:"specialRequests,omitempty"`
	Status          string             `json:"status,omitempty"`
	TotalAmount     float64            `json:"totalAmount,omitempty"`
	CreatedAt       string             `json:"createdAt,omitempty"`
}
