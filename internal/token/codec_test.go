package token

import (
	"testing"

	"frontend/internal/domain"
	"frontend/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestDecodeNestedUserClaim(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"user": map[string]any{
			"id":         "u-1",
			"email":      "amina@example.rw",
			"firstName":  "Amina",
			"lastName":   "Uwase",
			"role":       "USER",
			"isVerified": true,
		},
	})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	u := ResolveUser(claims)
	want := models.User{ID: "u-1", Email: "amina@example.rw", FirstName: "Amina", LastName: "Uwase", Role: "USER", IsVerified: true}
	if u != want {
		t.Fatalf("nested user not adopted verbatim: got %+v want %+v", u, want)
	}
}

func TestDecodeFlatClaimsSynthesizeUser(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"id":    "u-2",
		"email": "eric@example.rw",
		"role":  "ADMIN",
	})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	u := ResolveUser(claims)
	if u.ID != "u-2" || u.Email != "eric@example.rw" || u.Role != "ADMIN" {
		t.Fatalf("flat claims not synthesized: %+v", u)
	}
	if u.FirstName != "" || u.LastName != "" || u.IsVerified {
		t.Fatalf("missing fields should default to zero values: %+v", u)
	}
}

func TestDecodeMalformedTokens(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c.d",
		"header.!!!notbase64!!!.sig",
	}
	for _, raw := range cases {
		claims, err := Decode(raw)
		if err == nil {
			t.Fatalf("expected decode error for %q", raw)
		}
		if !domain.IsDecodeFailure(err) {
			t.Fatalf("expected DecodeError for %q, got %v", raw, err)
		}
		u := ResolveUser(claims)
		if u.Role != domain.RoleUser || !u.IsAnonymous() {
			t.Fatalf("malformed token should resolve to anonymous, got %+v", u)
		}
	}
}

func TestResolveUserIncompleteClaimsFallBack(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"id": "u-3"}) // no email/role
	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	u := ResolveUser(claims)
	if !u.IsAnonymous() || u.Role != domain.RoleUser {
		t.Fatalf("incomplete claims should fall back to anonymous, got %+v", u)
	}
}
