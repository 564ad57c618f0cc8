package domain

import (
	"errors"
	"fmt"
)

// DecodeError signals that a bearer token payload could not be read.
// Non-fatal: callers fall back to the anonymous profile.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	if e.Err == nil {
		return "token decode failed"
	}
	return fmt.Sprintf("token decode failed: %v", e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// VerificationRequiredError blocks booking submission until the account's
// email is confirmed. Recoverable: the user verifies and resubmits.
type VerificationRequiredError struct {
	Msg string
}

func (e VerificationRequiredError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "email verification required before booking"
}

// BookingError is a rejected or failed booking creation. Msg carries the
// backend's message verbatim when one was returned.
type BookingError struct {
	Msg string
	Err error
}

func (e BookingError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "booking failed"
}

func (e BookingError) Unwrap() error { return e.Err }

// PaymentError is a failed payment initiation after a booking was already
// created. BookingID identifies the booking left behind so it can be shown
// to the user and support.
type PaymentError struct {
	BookingID string
	Msg       string
	Err       error
}

func (e PaymentError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "payment failed"
	}
	if e.BookingID != "" {
		return fmt.Sprintf("%s (booking %s)", msg, e.BookingID)
	}
	return msg
}

func (e PaymentError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsDecodeFailure(err error) bool {
	var target DecodeError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsVerificationRequired(err error) bool {
	var target VerificationRequiredError
	return errors.As(err, &target)
}

func IsBookingFailed(err error) bool {
	var target BookingError
	return errors.As(err, &target)
}

func IsPaymentFailed(err error) bool {
	var target PaymentError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
