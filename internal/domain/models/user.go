package models

import "frontend/internal/domain"

// User is the session profile shown across pages. It is display state
// only: every authorization decision is re-checked by the backend.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// Anonymous returns the placeholder profile used when no token exists or
// its payload cannot be decoded.
func Anonymous() User {
	return User{Role: domain.RoleUser}
}

// IsAnonymous reports whether u is the placeholder profile rather than an
// identified account.
func (u User) IsAnonymous() bool {
	return u.ID == "" && u.Email == ""
}

func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.LastName
	}
}
