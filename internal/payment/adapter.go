// Package payment builds and submits the one-shot payment request that
// follows a successful booking creation.
package payment

import (
	"context"
	"errors"
	"math"
	"strings"

	"frontend/internal/api"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/utils"
)

// PaymentsAPI is the payment-creation slice of the backend client.
type PaymentsAPI interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (api.PaymentResponse, error)
}

// Details carries the method-specific form fields. Card fields apply to
// card variants, phone and account name to mobile money.
type Details struct {
	CardHolderName string `json:"cardHolderName,omitempty"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardExpiry     string `json:"cardExpiry,omitempty"`
	CardCVC        string `json:"cardCvc,omitempty"`

	PhoneNumber string `json:"phoneNumber,omitempty"`
	AccountName string `json:"accountName,omitempty"`
}

// Adapter validates payment form fields, applies the card surcharge and
// calls the payment endpoint. One shot, no retry.
type Adapter struct {
	Payments PaymentsAPI
	// CardSurchargePercent is added to the amount for card methods.
	CardSurchargePercent float64
	RequestID            string
}

// Amount applies the fixed-percentage card surcharge to the base amount.
func (a Adapter) Amount(base float64, method domain.PaymentMethod) float64 {
	if method.IsCard() && a.CardSurchargePercent > 0 {
		base += base * a.CardSurchargePercent / 100
	}
	return math.Round(base*100) / 100
}

// Initiate validates details, finalizes the request and calls the payment
// endpoint. The returned request carries the final (surcharged) amount.
// Validation failures never reach the network.
func (a Adapter) Initiate(ctx context.Context, req models.PaymentRequest, d Details) (models.PaymentRequest, error) {
	if req.BookingID == "" {
		return req, domain.ValidationError{Field: "bookingId", Msg: "missing booking id"}
	}
	if !req.Method.Valid() {
		return req, domain.ValidationError{Field: "method", Msg: "unknown payment method"}
	}
	if err := validateDetails(req.Method, d); err != nil {
		return req, err
	}
	if req.Currency == "" {
		req.Currency = domain.DefaultCurrency
	}
	req.Amount = a.Amount(req.Amount, req.Method)

	resp, err := a.Payments.CreatePayment(ctx, req)
	if err != nil {
		msg := ""
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			msg = apiErr.Message
		}
		return req, domain.PaymentError{BookingID: req.BookingID, Msg: msg, Err: err}
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "payment was not accepted"
		}
		return req, domain.PaymentError{BookingID: req.BookingID, Msg: msg}
	}

	utils.LogEvent(a.RequestID, "payment", "initiate",
		"booking_id="+req.BookingID+" amount="+utils.FormatMoney(req.Amount)+" method="+string(req.Method))
	return req, nil
}

func validateDetails(method domain.PaymentMethod, d Details) error {
	missing := func(field string) error {
		return domain.ValidationError{Field: field, Msg: "required for " + strings.ToLower(string(method))}
	}
	if method.IsCard() {
		switch {
		case strings.TrimSpace(d.CardHolderName) == "":
			return missing("cardHolderName")
		case strings.TrimSpace(d.CardNumber) == "":
			return missing("cardNumber")
		case strings.TrimSpace(d.CardExpiry) == "":
			return missing("cardExpiry")
		case strings.TrimSpace(d.CardCVC) == "":
			return missing("cardCvc")
		}
		return nil
	}
	switch {
	case strings.TrimSpace(d.PhoneNumber) == "":
		return missing("phoneNumber")
	case strings.TrimSpace(d.AccountName) == "":
		return missing("accountName")
	}
	return nil
}
