package models

import "frontend/internal/domain"

// PaymentRequest is built once after a successful booking creation and
// never mutated.
type PaymentRequest struct {
	BookingID string               `json:"bookingId"`
	Amount    float64              `json:"amount"`
	Currency  string               `json:"currency"`
	Method    domain.PaymentMethod `json:"method"`
}
