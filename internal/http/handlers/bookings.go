package handlers

import (
	"net/http"

	"frontend/internal/booking"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/http/middleware"
	"frontend/internal/payment"
	"frontend/internal/receipt"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
)

// bookingSubmission is the full dialog payload: draft fields plus the
// payment method and its form details.
type bookingSubmission struct {
	models.BookingDraft
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Payment       payment.Details      `json:"payment"`
}

// POST /api/bookings
//
// Runs the whole dialog flow server-side: resolve the listing, validate
// the draft, create the booking, then initiate payment. Booking creation
// always settles before payment starts.
func (h Handlers) SubmitBooking(c *gin.Context) {
	var req bookingSubmission
	if !BindJSONOrError(c, &req) {
		return
	}

	sess := middleware.GetSession(c)
	if sess.Token() == "" {
		RespondError(c, http.StatusUnauthorized, "log in to book", nil)
		return
	}

	ctx := c.Request.Context()
	cli := h.authedAPI(c)

	svc, err := h.lookupService(c, req.ServiceType, req.ServiceID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	ctrl := booking.NewController(sess, cli, payment.Adapter{
		Payments:             cli,
		CardSurchargePercent: h.Env.CardSurchargePercent,
		RequestID:            middleware.GetRequestID(c),
	})
	ctrl.RequestID = middleware.GetRequestID(c)
	ctrl.Open(svc)

	if err := ctrl.Submit(ctx, req.BookingDraft, req.PaymentMethod, req.Payment); err != nil {
		RespondDomainError(c, err)
		return
	}

	booked := ctrl.Booking()
	paid := ctrl.Payment()
	c.JSON(http.StatusCreated, gin.H{
		"booking":  booked,
		"payment":  paid,
		"state":    ctrl.State(),
		"receipt":  "/api/bookings/" + booked.ID + "/receipt",
		"currency": paid.Currency,
	})
}

// GET /api/bookings/my
func (h Handlers) MyBookings(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess.Token() == "" {
		RespondError(c, http.StatusUnauthorized, "log in first", nil)
		return
	}
	bookings, err := h.authedAPI(c).ListMyBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id/receipt
func (h Handlers) BookingReceipt(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess.Token() == "" {
		RespondError(c, http.StatusUnauthorized, "log in first", nil)
		return
	}

	booked, err := h.authedAPI(c).GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	data := receipt.Data{
		BookingID:   booked.ID,
		ServiceName: booked.ServiceName,
		ServiceType: booked.ServiceType,
		StartDate:   booked.StartDate,
		EndDate:     booked.EndDate,
		People:      booked.NumberOfPeople,
		Amount:      booked.TotalAmount,
	}
	if u := sess.User(); u != nil {
		data.CustomerName = u.FullName()
		data.CustomerEmail = u.Email
	}

	pdf, filename, err := receipt.Build(data)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render receipt", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "receipt", "booking_id="+booked.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// lookupService resolves the listing the draft points at into the pricing
// descriptor the controller validates against. Airport pickups are priced
// off the transportation listing they use.
func (h Handlers) lookupService(c *gin.Context, t domain.ServiceType, id string) (models.Service, error) {
	ctx := c.Request.Context()
	cli := h.authedAPI(c)
	switch t {
	case domain.ServiceTour:
		tour, err := cli.GetTour(ctx, id)
		if err != nil {
			return models.Service{}, err
		}
		return tour.Service(), nil
	case domain.ServiceTransportation:
		v, err := cli.GetTransportation(ctx, id)
		if err != nil {
			return models.Service{}, err
		}
		return v.Service(), nil
	case domain.ServiceAirportPickup:
		v, err := cli.GetTransportation(ctx, id)
		if err != nil {
			return models.Service{}, err
		}
		svc := v.Service()
		svc.Type = domain.ServiceAirportPickup
		return svc, nil
	default:
		return models.Service{}, domain.ValidationError{Field: "serviceType", Msg: "unknown service type"}
	}
}
