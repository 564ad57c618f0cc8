// Package token decodes bearer-token payloads for optimistic display of
// user info. No signature verification happens here: decoded claims are
// never an authorization boundary, the backend re-checks every request.
package token

import (
	"strings"

	"frontend/internal/domain"
	"frontend/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded, unverified payload of a bearer token. The backend
// either embeds a full user object or flat id/email/role fields.
type Claims struct {
	jwt.RegisteredClaims

	UserID     string       `json:"id,omitempty"`
	Email      string       `json:"email,omitempty"`
	Role       string       `json:"role,omitempty"`
	FirstName  string       `json:"firstName,omitempty"`
	LastName   string       `json:"lastName,omitempty"`
	IsVerified bool         `json:"isVerified,omitempty"`
	User       *models.User `json:"user,omitempty"`
}

// Decode reads the payload segment of a header.payload.signature token.
// Any malformed segment, invalid base64 or invalid JSON yields a
// domain.DecodeError; it never panics.
func Decode(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.DecodeError{}
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, domain.DecodeError{Err: err}
	}
	return claims, nil
}

// ResolveUser applies the three-tier fallback: a nested user object is
// adopted verbatim; else id+email+role synthesize a profile; else the
// anonymous placeholder. The result is never "no user".
func ResolveUser(c *Claims) models.User {
	if c == nil {
		return models.Anonymous()
	}
	if c.User != nil {
		return *c.User
	}
	if c.UserID != "" && c.Email != "" && c.Role != "" {
		return models.User{
			ID:         c.UserID,
			Email:      c.Email,
			Role:       c.Role,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			IsVerified: c.IsVerified,
		}
	}
	return models.Anonymous()
}
