package api

import (
	"context"

	"frontend/internal/domain/models"
)

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResponse is returned by login and register. User may be absent, in
// which case callers fall back to decoding the token payload.
type AuthResponse struct {
	Token   string       `json:"token"`
	User    *models.User `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/auth/register", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	err := c.post(ctx, "/auth/login", body, &out)
	return out, err
}

// VerifyEmail confirms the account behind the emailed verification token.
func (c *Client) VerifyEmail(ctx context.Context, verificationToken string) error {
	body := map[string]string{"token": verificationToken}
	return c.post(ctx, "/auth/verify-email", body, nil)
}

type currentUserResponse struct {
	User models.User `json:"user"`
}

// CurrentUser fetches the authoritative profile for the bearer token.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var out currentUserResponse
	if err := c.get(ctx, "/auth/me", &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// FetchUser satisfies the session store's refresh dependency without the
// store holding a tokened client.
func (c *Client) FetchUser(ctx context.Context, token string) (models.User, error) {
	return c.WithToken(token).CurrentUser(ctx)
}
