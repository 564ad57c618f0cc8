package handlers

import (
	"errors"
	"net/http"

	"frontend/internal/api"
	"frontend/internal/domain"
	"frontend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
		"message":    message,
	})
}

// RespondDomainError maps the error taxonomy to HTTP responses. Every
// failure stays scoped to the current request; nothing is fatal.
func RespondDomainError(c *gin.Context, err error) {
	var apiErr *api.APIError
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsVerificationRequired(err):
		respondError(c, http.StatusForbidden, "verification_required", err.Error(), nil)
	case domain.IsPaymentFailed(err):
		var pe domain.PaymentError
		details := any(nil)
		if errors.As(err, &pe) && pe.BookingID != "" {
			details = gin.H{"bookingId": pe.BookingID}
		}
		respondError(c, http.StatusPaymentRequired, "payment_failed", err.Error(), details)
	case domain.IsBookingFailed(err):
		respondError(c, http.StatusBadGateway, "booking_failed", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		respondError(c, status, "backend_error", apiErr.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
