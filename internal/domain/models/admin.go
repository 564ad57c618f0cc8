package models

// DashboardStats are read-only aggregates for the admin dashboard.
type DashboardStats struct {
	TotalUsers      int `json:"totalUsers"`
	TotalBookings   int `json:"totalBookings"`
	TotalTours      int `json:"totalTours"`
	TotalVehicles   int `json:"totalVehicles"`
	PendingBookings int `json:"pendingBookings"`
}

// PendingSummary counts items awaiting admin action.
type PendingSummary struct {
	PendingBookings    int `json:"pendingBookings"`
	PendingTripPlans   int `json:"pendingTripPlans"`
	UnverifiedListings int `json:"unverifiedListings"`
}
