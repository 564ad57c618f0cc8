package api

import (
	"context"

	"frontend/internal/domain/models"
)

// PaymentResponse reports whether the backend accepted the payment
// initiation. Reference identifies the payment on success.
type PaymentResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
	Message   string `json:"message,omitempty"`
}

// CreatePayment initiates a single payment for an existing booking.
func (c *Client) CreatePayment(ctx context.Context, req models.PaymentRequest) (PaymentResponse, error) {
	var out PaymentResponse
	err := c.post(ctx, "/payments/single", req, &out)
	return out, err
}
