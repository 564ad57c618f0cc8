// Package booking drives the per-dialog reservation flow: form state,
// validation, the verification gate, and the booking-then-payment
// submission sequence.
package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"frontend/internal/api"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/payment"
	"frontend/internal/session"
	"frontend/internal/utils"

	"github.com/google/uuid"
)

// State is the dialog lifecycle. Transitions:
// Closed -> Editing -> Submitting -> (Paying -> Succeeded) | Failed.
type State string

const (
	StateClosed     State = "CLOSED"
	StateEditing    State = "EDITING"
	StateSubmitting State = "SUBMITTING"
	StatePaying     State = "PAYING"
	StateSucceeded  State = "SUCCEEDED"
	StateFailed     State = "FAILED"
)

// BookingsAPI is the create-booking slice of the backend client.
type BookingsAPI interface {
	CreateBooking(ctx context.Context, req api.BookingRequest) (models.Booking, error)
}

// PaymentInitiator runs the post-booking payment step.
type PaymentInitiator interface {
	Initiate(ctx context.Context, req models.PaymentRequest, d payment.Details) (models.PaymentRequest, error)
}

// Controller owns one booking dialog's state. It is created per dialog
// and never shared between pages.
type Controller struct {
	Session  *session.Store
	Bookings BookingsAPI
	Payments PaymentInitiator

	RequestID string

	mu      sync.Mutex
	state   State
	service models.Service
	draft   models.BookingDraft
	idemKey string
	booking models.Booking
	payReq  models.PaymentRequest
	lastErr error
}

func NewController(sess *session.Store, bookings BookingsAPI, payments PaymentInitiator) *Controller {
	return &Controller{
		Session:  sess,
		Bookings: bookings,
		Payments: payments,
		state:    StateClosed,
	}
}

// Open starts editing a draft for the given service, clearing any prior
// success or error flags.
func (c *Controller) Open(svc models.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateEditing
	c.service = svc
	c.draft = models.NewDraft(svc)
	c.idemKey = ""
	c.booking = models.Booking{}
	c.payReq = models.PaymentRequest{}
	c.lastErr = nil
}

// Close discards the draft and resets to Closed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateClosed
	c.draft = models.BookingDraft{}
	c.idemKey = ""
	c.lastErr = nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Draft() models.BookingDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Booking returns the created booking record, valid from Paying onward.
func (c *Controller) Booking() models.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.booking
}

// Payment returns the finalized payment request, valid once Succeeded.
func (c *Controller) Payment() models.PaymentRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payReq
}

func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Submit validates the draft and runs the booking-then-payment sequence.
// The booking create always settles before payment initiation begins.
// An unverified session user is blocked before any network call. On a
// payment failure the created booking stays put; resubmitting reuses the
// same idempotency key so the backend does not duplicate it.
func (c *Controller) Submit(ctx context.Context, draft models.BookingDraft, method domain.PaymentMethod, details payment.Details) error {
	c.mu.Lock()
	if c.state != StateEditing && c.state != StateFailed {
		c.mu.Unlock()
		return domain.ValidationError{Msg: "no booking form is open"}
	}
	c.draft = draft
	svc := c.service

	if u := c.Session.User(); u != nil && !u.IsAnonymous() && !u.IsVerified {
		c.state = StateEditing
		err := domain.VerificationRequiredError{}
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	amount, err := validateDraft(svc, draft)
	if err != nil {
		c.state = StateEditing
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	if c.idemKey == "" {
		c.idemKey = uuid.NewString()
	}
	idemKey := c.idemKey
	c.state = StateSubmitting
	c.mu.Unlock()

	req := api.BookingRequest{
		ServiceType:     draft.ServiceType,
		ServiceID:       draft.ServiceID,
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
		NumberOfPeople:  draft.NumberOfPeople,
		SpecialRequests: buildSpecialRequests(draft),
		IdempotencyKey:  idemKey,
	}

	created, err := c.Bookings.CreateBooking(ctx, req)

	c.mu.Lock()
	if ctx.Err() != nil {
		// late result after cancel; do not apply it
		c.state = StateEditing
		c.mu.Unlock()
		return ctx.Err()
	}
	if err != nil {
		mapped := mapBookingError(err)
		if domain.IsVerificationRequired(mapped) {
			c.state = StateEditing
		} else {
			c.state = StateFailed
		}
		c.lastErr = mapped
		c.mu.Unlock()
		return mapped
	}
	c.booking = created
	c.state = StatePaying
	c.mu.Unlock()

	utils.LogEvent(c.RequestID, "booking", "create",
		"booking_id="+created.ID+" service="+string(draft.ServiceType))

	payReq := models.PaymentRequest{
		BookingID: created.ID,
		Amount:    amount,
		Currency:  svc.Currency,
		Method:    method,
	}
	finalReq, err := c.Payments.Initiate(ctx, payReq, details)

	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		// the booking exists; land in Failed so a resubmit keeps the
		// idempotency key instead of forcing a fresh dialog
		c.state = StateFailed
		c.lastErr = ctx.Err()
		return ctx.Err()
	}
	if err != nil {
		// the booking is not rolled back; its id travels with the error
		if !domain.IsPaymentFailed(err) {
			err = domain.PaymentError{BookingID: created.ID, Msg: err.Error(), Err: err}
		}
		c.state = StateFailed
		c.lastErr = err
		return err
	}
	c.payReq = finalReq
	c.state = StateSucceeded
	c.lastErr = nil
	return nil
}

// validateDraft checks required fields against the service descriptor and
// returns the base amount on success.
func validateDraft(svc models.Service, d models.BookingDraft) (float64, error) {
	if !d.ServiceType.Valid() {
		return 0, domain.ValidationError{Field: "serviceType", Msg: "unknown service type"}
	}
	if strings.TrimSpace(d.ServiceID) == "" {
		return 0, domain.ValidationError{Field: "serviceId", Msg: "missing service"}
	}
	if d.NumberOfPeople < 1 {
		return 0, domain.ValidationError{Field: "numberOfPeople", Msg: "at least one traveler required"}
	}
	if svc.Capacity > 0 && d.NumberOfPeople > svc.Capacity {
		return 0, domain.ValidationError{Field: "numberOfPeople", Msg: "exceeds service capacity"}
	}

	start, err := utils.ParseDate(d.StartDate)
	if err != nil {
		return 0, domain.ValidationError{Field: "startDate", Msg: "date required as YYYY-MM-DD"}
	}

	if !d.ServiceType.DateRanged() {
		return svc.UnitPrice * float64(d.NumberOfPeople), nil
	}

	end, err := utils.ParseDate(d.EndDate)
	if err != nil {
		return 0, domain.ValidationError{Field: "endDate", Msg: "date required as YYYY-MM-DD"}
	}
	if end.Before(start) {
		return 0, domain.ValidationError{Field: "endDate", Msg: "end date before start date"}
	}
	return svc.UnitPrice * float64(utils.DayCount(start, end)), nil
}

// buildSpecialRequests folds the per-service extras into one free-text
// field, matching what the backend stores.
func buildSpecialRequests(d models.BookingDraft) string {
	var flight, pickup, dropoff string
	if d.FlightNumber != "" {
		flight = "Flight: " + d.FlightNumber
	}
	if d.PickupAddress != "" {
		pickup = "Pickup: " + d.PickupAddress
	}
	if d.DropoffAddress != "" {
		dropoff = "Dropoff: " + d.DropoffAddress
	}
	return utils.JoinNotes(d.SpecialRequests, flight, pickup, dropoff)
}

// mapBookingError surfaces the backend message verbatim and re-signals
// server-side verification enforcement as the recoverable gate.
func mapBookingError(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if hintsVerification(apiErr.Message) {
			return domain.VerificationRequiredError{Msg: apiErr.Message}
		}
		return domain.BookingError{Msg: apiErr.Message, Err: err}
	}
	return domain.BookingError{Err: err}
}

func hintsVerification(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "verif") || strings.Contains(m, "confirm your email")
}
