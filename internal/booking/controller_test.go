package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"frontend/internal/api"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/payment"
	"frontend/internal/session"
)

type fakeBookings struct {
	calls   int
	lastReq api.BookingRequest
	resp    models.Booking
	err     error
}

func (f *fakeBookings) CreateBooking(_ context.Context, req api.BookingRequest) (models.Booking, error) {
	f.calls++
	f.lastReq = req
	return f.resp, f.err
}

type fakePaymentsAPI struct {
	calls   int
	lastReq models.PaymentRequest
	resp    api.PaymentResponse
	err     error
}

func (f *fakePaymentsAPI) CreatePayment(_ context.Context, req models.PaymentRequest) (api.PaymentResponse, error) {
	f.calls++
	f.lastReq = req
	return f.resp, f.err
}

func loggedInSession(t *testing.T, u models.User) *session.Store {
	t.Helper()
	store := session.NewStore(session.NewMemoryStorage(), "sid", nil)
	if err := store.Login(context.Background(), "bearer-token", &u); err != nil {
		t.Fatalf("login: %v", err)
	}
	return store
}

func verifiedSession(t *testing.T) *session.Store {
	return loggedInSession(t, models.User{ID: "u-1", Email: "amina@example.rw", Role: "USER", IsVerified: true})
}

func carService() models.Service {
	return models.Service{
		ID: "car-1", Type: domain.ServiceTransportation, Name: "Safari Land Cruiser",
		UnitPrice: 100, Capacity: 4, Currency: "RWF",
	}
}

func tourService() models.Service {
	return models.Service{
		ID: "tour-1", Type: domain.ServiceTour, Name: "Akagera Game Drive",
		UnitPrice: 80, Capacity: 12, Currency: "RWF",
	}
}

func momoDetails() payment.Details {
	return payment.Details{PhoneNumber: "0788000000", AccountName: "Amina Uwase"}
}

func newTestController(sess *session.Store, bookings *fakeBookings, payAPI *fakePaymentsAPI) *Controller {
	return NewController(sess, bookings, payment.Adapter{Payments: payAPI})
}

func TestSubmitBlockedForUnverifiedUser(t *testing.T) {
	bookings := &fakeBookings{}
	payAPI := &fakePaymentsAPI{}
	sess := loggedInSession(t, models.User{ID: "u-2", Email: "eric@example.rw", Role: "USER", IsVerified: false})

	ctrl := newTestController(sess, bookings, payAPI)
	ctrl.Open(tourService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"
	err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails())
	if !domain.IsVerificationRequired(err) {
		t.Fatalf("expected VerificationRequired, got %v", err)
	}
	if bookings.calls != 0 {
		t.Fatalf("unverified user must never reach the booking endpoint, calls=%d", bookings.calls)
	}
	if ctrl.State() != StateEditing {
		t.Fatalf("dialog should stay editable, state=%s", ctrl.State())
	}
}

func TestSubmitCapacityExceeded(t *testing.T) {
	bookings := &fakeBookings{}
	payAPI := &fakePaymentsAPI{}
	ctrl := newTestController(verifiedSession(t), bookings, payAPI)
	ctrl.Open(carService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"
	draft.EndDate = "2025-01-12"
	draft.NumberOfPeople = 10

	err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails())
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if bookings.calls != 0 || payAPI.calls != 0 {
		t.Fatalf("validation failure must not reach the network")
	}
}

func TestSubmitMissingDates(t *testing.T) {
	bookings := &fakeBookings{}
	ctrl := newTestController(verifiedSession(t), bookings, &fakePaymentsAPI{})
	ctrl.Open(tourService())

	err := ctrl.Submit(context.Background(), ctrl.Draft(), domain.MethodMobileMoney, momoDetails())
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for missing start date, got %v", err)
	}
	if bookings.calls != 0 {
		t.Fatalf("no network call expected")
	}
}

func TestSubmitDayCountPricing(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"2024-12-15", "2024-12-17", 200}, // 2 days x 100
		{"2024-12-15", "2024-12-15", 100}, // floor at 1 day
	}
	for _, tc := range cases {
		bookings := &fakeBookings{resp: models.Booking{ID: "b-1"}}
		payAPI := &fakePaymentsAPI{resp: api.PaymentResponse{Success: true}}
		ctrl := newTestController(verifiedSession(t), bookings, payAPI)
		ctrl.Open(carService())

		draft := ctrl.Draft()
		draft.StartDate = tc.start
		draft.EndDate = tc.end
		if err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails()); err != nil {
			t.Fatalf("%s-%s: submit: %v", tc.start, tc.end, err)
		}
		if payAPI.lastReq.Amount != tc.want {
			t.Fatalf("%s-%s: amount = %v, want %v", tc.start, tc.end, payAPI.lastReq.Amount, tc.want)
		}
	}
}

func TestSubmitPerPersonPricing(t *testing.T) {
	bookings := &fakeBookings{resp: models.Booking{ID: "b-2"}}
	payAPI := &fakePaymentsAPI{resp: api.PaymentResponse{Success: true}}
	ctrl := newTestController(verifiedSession(t), bookings, payAPI)
	ctrl.Open(tourService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-02-01"
	draft.NumberOfPeople = 3
	if err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if payAPI.lastReq.Amount != 240 { // 3 x 80
		t.Fatalf("amount = %v, want 240", payAPI.lastReq.Amount)
	}
	if ctrl.State() != StateSucceeded {
		t.Fatalf("state = %s, want %s", ctrl.State(), StateSucceeded)
	}
}

func TestSubmitAggregatesExtrasIntoSpecialRequests(t *testing.T) {
	bookings := &fakeBookings{resp: models.Booking{ID: "b-3"}}
	payAPI := &fakePaymentsAPI{resp: api.PaymentResponse{Success: true}}
	ctrl := newTestController(verifiedSession(t), bookings, payAPI)

	svc := carService()
	svc.Type = domain.ServiceAirportPickup
	ctrl.Open(svc)

	draft := ctrl.Draft()
	draft.StartDate = "2025-03-01"
	draft.SpecialRequests = "child seat please"
	draft.FlightNumber = "WB500"
	draft.PickupAddress = "Kigali International Airport"
	draft.DropoffAddress = "Hotel des Mille Collines"

	if err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	got := bookings.lastReq.SpecialRequests
	for _, want := range []string{"child seat please", "Flight: WB500", "Pickup: Kigali International Airport", "Dropoff: Hotel des Mille Collines"} {
		if !strings.Contains(got, want) {
			t.Fatalf("special requests missing %q: %q", want, got)
		}
	}
}

func TestSubmitBookingFailureSurfacesBackendMessage(t *testing.T) {
	bookings := &fakeBookings{err: &api.APIError{Status: 400, Message: "vehicle not available on those dates"}}
	ctrl := newTestController(verifiedSession(t), bookings, &fakePaymentsAPI{})
	ctrl.Open(carService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"
	draft.EndDate = "2025-01-12"

	err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails())
	if !domain.IsBookingFailed(err) {
		t.Fatalf("expected BookingError, got %v", err)
	}
	if err.Error() != "vehicle not available on those dates" {
		t.Fatalf("backend message not verbatim: %q", err.Error())
	}
	if ctrl.State() != StateFailed {
		t.Fatalf("state = %s, want %s", ctrl.State(), StateFailed)
	}
}

func TestSubmitServerSideVerificationHintRemapped(t *testing.T) {
	bookings := &fakeBookings{err: &api.APIError{Status: 403, Message: "Please verify your email before booking"}}
	payAPI := &fakePaymentsAPI{}
	// client-side data says verified; the server disagrees
	ctrl := newTestController(verifiedSession(t), bookings, payAPI)
	ctrl.Open(tourService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"

	err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails())
	if !domain.IsVerificationRequired(err) {
		t.Fatalf("expected VerificationRequired remap, got %v", err)
	}
	if ctrl.State() != StateEditing {
		t.Fatalf("verification gate is recoverable, state=%s", ctrl.State())
	}
	if payAPI.calls != 0 {
		t.Fatalf("payment must not start after a failed booking create")
	}
}

func TestSubmitPaymentFailurePreservesBookingID(t *testing.T) {
	bookings := &fakeBookings{resp: models.Booking{ID: "b-42"}}
	payAPI := &fakePaymentsAPI{resp: api.PaymentResponse{Success: false, Message: "card declined"}}
	ctrl := newTestController(verifiedSession(t), bookings, payAPI)
	ctrl.Open(tourService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"

	err := ctrl.Submit(context.Background(), draft, domain.MethodCreditCard, payment.Details{
		CardHolderName: "Amina Uwase", CardNumber: "4111111111111111", CardExpiry: "12/27", CardCVC: "123",
	})
	if !domain.IsPaymentFailed(err) {
		t.Fatalf("expected PaymentError, got %v", err)
	}
	var pe domain.PaymentError
	if !errors.As(err, &pe) || pe.BookingID != "b-42" {
		t.Fatalf("booking id not preserved in error context: %v", err)
	}
	if ctrl.State() != StateFailed {
		t.Fatalf("state = %s, want %s", ctrl.State(), StateFailed)
	}
	if ctrl.Booking().ID != "b-42" {
		t.Fatalf("created booking must stay on the controller for diagnostics")
	}
}

func TestSubmitRetryReusesIdempotencyKey(t *testing.T) {
	bookings := &fakeBookings{resp: models.Booking{ID: "b-9"}}
	payAPI := &fakePaymentsAPI{resp: api.PaymentResponse{Success: false, Message: "timeout"}}
	ctrl := newTestController(verifiedSession(t), bookings, payAPI)
	ctrl.Open(tourService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"

	if err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails()); err == nil {
		t.Fatalf("expected payment failure on first submit")
	}
	firstKey := bookings.lastReq.IdempotencyKey
	if firstKey == "" {
		t.Fatalf("idempotency key missing on first submit")
	}

	payAPI.resp = api.PaymentResponse{Success: true}
	if err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if bookings.lastReq.IdempotencyKey != firstKey {
		t.Fatalf("retry must reuse the idempotency key: %q vs %q", bookings.lastReq.IdempotencyKey, firstKey)
	}
	if ctrl.State() != StateSucceeded {
		t.Fatalf("state = %s, want %s", ctrl.State(), StateSucceeded)
	}
}

func TestSubmitCancelledContextNotApplied(t *testing.T) {
	bookings := &fakeBookings{resp: models.Booking{ID: "b-1"}}
	ctrl := newTestController(verifiedSession(t), bookings, &fakePaymentsAPI{})
	ctrl.Open(tourService())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"

	err := ctrl.Submit(ctx, draft, domain.MethodMobileMoney, momoDetails())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if got := ctrl.State(); got == StateSucceeded || got == StateFailed {
		t.Fatalf("late result must not settle the dialog, state=%s", got)
	}
}

type cancellingPayments struct {
	cancel context.CancelFunc
}

func (p cancellingPayments) Initiate(ctx context.Context, _ models.PaymentRequest, _ payment.Details) (models.PaymentRequest, error) {
	p.cancel()
	return models.PaymentRequest{}, ctx.Err()
}

func TestSubmitCancelledDuringPaymentAllowsRetry(t *testing.T) {
	bookings := &fakeBookings{resp: models.Booking{ID: "b-7"}}
	ctx, cancel := context.WithCancel(context.Background())

	ctrl := NewController(verifiedSession(t), bookings, cancellingPayments{cancel})
	ctrl.Open(tourService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"

	err := ctrl.Submit(ctx, draft, domain.MethodMobileMoney, momoDetails())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if ctrl.State() != StateFailed {
		t.Fatalf("state = %s, want %s", ctrl.State(), StateFailed)
	}
	firstKey := bookings.lastReq.IdempotencyKey

	ctrl.Payments = payment.Adapter{Payments: &fakePaymentsAPI{resp: api.PaymentResponse{Success: true}}}
	if err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails()); err != nil {
		t.Fatalf("retry after cancelled payment: %v", err)
	}
	if bookings.lastReq.IdempotencyKey != firstKey {
		t.Fatalf("retry must reuse the idempotency key: %q vs %q", bookings.lastReq.IdempotencyKey, firstKey)
	}
	if ctrl.State() != StateSucceeded {
		t.Fatalf("state = %s, want %s", ctrl.State(), StateSucceeded)
	}
}

func TestSubmitAnonymousUserNotGatedLocally(t *testing.T) {
	bookings := &fakeBookings{err: &api.APIError{Status: 401, Message: "authentication required"}}
	payAPI := &fakePaymentsAPI{}

	// no login: Initialize over empty storage adopts the anonymous
	// placeholder, which is unverified but must still reach the backend
	sess := session.NewStore(session.NewMemoryStorage(), "sid", nil)
	if err := sess.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	ctrl := newTestController(sess, bookings, payAPI)
	ctrl.Open(tourService())

	draft := ctrl.Draft()
	draft.StartDate = "2025-01-10"

	err := ctrl.Submit(context.Background(), draft, domain.MethodMobileMoney, momoDetails())
	if domain.IsVerificationRequired(err) {
		t.Fatalf("anonymous user must not trip the local verification gate: %v", err)
	}
	if bookings.calls != 1 {
		t.Fatalf("backend decides for anonymous users, calls=%d", bookings.calls)
	}
	if !domain.IsBookingFailed(err) {
		t.Fatalf("expected the backend rejection to surface, got %v", err)
	}
}

func TestSubmitWithoutOpenDialog(t *testing.T) {
	ctrl := newTestController(verifiedSession(t), &fakeBookings{}, &fakePaymentsAPI{})
	err := ctrl.Submit(context.Background(), models.BookingDraft{}, domain.MethodMobileMoney, momoDetails())
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError when dialog is closed, got %v", err)
	}
}

func TestCloseResetsDialog(t *testing.T) {
	ctrl := newTestController(verifiedSession(t), &fakeBookings{}, &fakePaymentsAPI{})
	ctrl.Open(tourService())
	ctrl.Close()
	if ctrl.State() != StateClosed {
		t.Fatalf("state = %s, want %s", ctrl.State(), StateClosed)
	}
	if d := ctrl.Draft(); d.ServiceID != "" {
		t.Fatalf("draft should be discarded on close: %+v", d)
	}
}
