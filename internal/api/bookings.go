package api

import (
	"context"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
)

// BookingRequest is the create-booking payload. IdempotencyKey lets a
// resubmission after a failed payment reuse the original booking instead
// of creating a duplicate.
type BookingRequest struct {
	ServiceType     domain.ServiceType `json:"serviceType"`
	ServiceID       string             `json:"serviceId"`
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
	NumberOfPeople  int                `json:"numberOfPeople"`
	SpecialRequests string             `json:"specialRequests,omitempty"`
	IdempotencyKey  string             `json:"idempotencyKey,omitempty"`
}

type bookingEnvelope struct {
	Booking models.Booking `json:"booking"`
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (models.Booking, error) {
	var out bookingEnvelope
	if err := c.post(ctx, "/bookings", req, &out); err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	var out bookingEnvelope
	if err := c.get(ctx, "/bookings/"+id, &out); err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

func (c *Client) ListMyBookings(ctx context.Context) ([]models.Booking, error) {
	var out struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.get(ctx, "/bookings/my", &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}
