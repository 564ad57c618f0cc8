package domain

import "strings"

// ServiceType identifies which kind of listing a booking is made against.
type ServiceType string

const (
	ServiceTransportation ServiceType = "TRANSPORTATION"
	ServiceTour           ServiceType = "TOUR"
	ServiceAirportPickup  ServiceType = "AIRPORT_PICKUP"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTransportation, ServiceTour, ServiceAirportPickup:
		return true
	default:
		return false
	}
}

// DateRanged reports whether pricing scales with the booked day count
// instead of the head count.
func (t ServiceType) DateRanged() bool {
	return t == ServiceTransportation
}

// PaymentMethod selects the payment channel for a booking.
type PaymentMethod string

const (
	MethodCreditCard  PaymentMethod = "CREDIT_CARD"
	MethodDebitCard   PaymentMethod = "DEBIT_CARD"
	MethodMobileMoney PaymentMethod = "MOBILE_MONEY"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodMobileMoney:
		return true
	default:
		return false
	}
}

// IsCard covers every card variant.
func (m PaymentMethod) IsCard() bool {
	return strings.HasSuffix(string(m), "_CARD")
}

// RoleUser is the fallback role for anonymous or undecodable sessions.
const RoleUser = "USER"

// RoleAdmin gates the admin dashboard pages.
const RoleAdmin = "ADMIN"

// DefaultCurrency is the platform currency (Rwandan franc).
const DefaultCurrency = "RWF"
