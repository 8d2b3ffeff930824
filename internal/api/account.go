package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Areeb006/FAJR/internal/domain"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// LoginRequest signs in with either an email or a phone number.
type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required_without=Phone"`
	Phone    string `json:"phone,omitempty" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// ProfileUpdate is the body of PUT /api/user. The password fields are only
// sent when the password is being changed.
type ProfileUpdate struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Phone              string `json:"phone"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	PreferredFragrance string `json:"preferred_fragrance"`
	CurrentPassword    string `json:"current_password,omitempty"`
	Password           string `json:"password,omitempty"`
}

type sessionAnswer struct {
	Message string             `json:"message"`
	User    domain.SessionUser `json:"user"`
}

// Login signs in and stores the session cookie.
func (c *Client) Login(ctx context.Context, in LoginRequest) (domain.SessionUser, string, error) {
	var out sessionAnswer
	err := c.sendJSON(ctx, http.MethodPost, "/api/login", "/api/login", in, &out)
	return out.User, out.Message, err
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, in RegisterRequest) (domain.SessionUser, string, error) {
	var out sessionAnswer
	err := c.sendJSON(ctx, http.MethodPost, "/api/register", "/api/register", in, &out)
	return out.User, out.Message, err
}

// Logout ends the server session and forgets the local one.
func (c *Client) Logout(ctx context.Context) error {
	err := c.sendJSON(ctx, http.MethodPost, "/api/logout", "/api/logout", nil, nil)
	if c.session != nil {
		if cerr := c.session.Clear(ctx); cerr != nil && err == nil {
			err = apperrors.Internal(cerr)
		}
	}
	return err
}

// CheckAuth reports whether the current session is signed in. A 401 answer
// is reported as signed out, not as an error.
func (c *Client) CheckAuth(ctx context.Context) (domain.AuthStatus, error) {
	var out struct {
		Authenticated bool                `json:"authenticated"`
		User          *domain.SessionUser `json:"user"`
	}
	err := c.getJSON(ctx, "/api/check-auth", "/api/check-auth", &out)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		return domain.AuthStatus{}, nil
	}
	if err != nil {
		return domain.AuthStatus{}, err
	}
	if !out.Authenticated {
		return domain.AuthStatus{}, nil
	}
	return domain.AuthStatus{Authenticated: true, User: out.User}, nil
}

// CurrentUser fetches the signed-in user's profile.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	err := c.getJSON(ctx, "/api/user", "/api/user", &out)
	return out.User, err
}

// UpdateCurrentUser saves the signed-in user's profile.
func (c *Client) UpdateCurrentUser(ctx context.Context, in ProfileUpdate) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.sendJSON(ctx, http.MethodPut, "/api/user", "/api/user", in, &out)
	return out.Message, err
}
