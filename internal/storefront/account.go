package storefront

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Areeb006/FAJR/internal/api"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/notify"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
	"github.com/Areeb006/FAJR/pkg/logger"
	"github.com/Areeb006/FAJR/pkg/validator"
)

// User-facing validation messages.
const (
	MsgLoginIncomplete         = "Enter email or phone, and password"
	MsgRegisterIncomplete      = "Please fill in all fields (email and phone required)"
	MsgPasswordMismatch        = "Passwords do not match"
	MsgNewPasswordMismatch     = "New passwords do not match"
	MsgCurrentPasswordRequired = "Enter your current password to set a new one"
	MsgLoggedOut               = "Logged out successfully"
)

// AccountBackend is the part of the API the account screens use.
type AccountBackend interface {
	Login(ctx context.Context, in api.LoginRequest) (domain.SessionUser, string, error)
	Register(ctx context.Context, in api.RegisterRequest) (domain.SessionUser, string, error)
	Logout(ctx context.Context) error
	CheckAuth(ctx context.Context) (domain.AuthStatus, error)
	CurrentUser(ctx context.Context) (domain.User, error)
	UpdateCurrentUser(ctx context.Context, in api.ProfileUpdate) (string, error)
}

// Account drives the sign-in, registration and profile forms.
type Account struct {
	reporter
	backend AccountBackend
}

// NewAccount creates the account controller.
func NewAccount(backend AccountBackend, notifier notify.Notifier, logger *slog.Logger) *Account {
	return &Account{
		reporter: reporter{notifier: notifier, logger: logger},
		backend:  backend,
	}
}

// Login signs in with an email or a phone number; an identifier containing
// "@" is taken as an email.
func (a *Account) Login(ctx context.Context, identifier, password string) (domain.SessionUser, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return domain.SessionUser{}, a.fail(ctx, "login", apperrors.InvalidInput(MsgLoginIncomplete))
	}

	req := api.LoginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		req.Email = identifier
	} else {
		req.Phone = identifier
	}
	if err := validator.Check(req); err != nil {
		return domain.SessionUser{}, a.fail(ctx, "login", err)
	}

	user, msg, err := a.backend.Login(ctx, req)
	if err != nil {
		return domain.SessionUser{}, a.fail(ctx, "login", err)
	}
	a.logger.InfoContext(logger.WithUserID(ctx, user.Email), "signed in")
	a.succeed(ctx, msg)
	return user, nil
}

// Registration is the sign-up form.
type Registration struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// Register creates an account and signs it in. Every field is required and
// the two passwords must match.
func (a *Account) Register(ctx context.Context, form Registration) (domain.SessionUser, error) {
	if err := validator.Validate(form); err != nil {
		return domain.SessionUser{}, a.fail(ctx, "register", apperrors.InvalidInput(MsgRegisterIncomplete))
	}
	if form.Password != form.ConfirmPassword {
		return domain.SessionUser{}, a.fail(ctx, "register", apperrors.InvalidInput(MsgPasswordMismatch))
	}

	req := api.RegisterRequest{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		Password:  form.Password,
	}
	if err := validator.Check(req); err != nil {
		return domain.SessionUser{}, a.fail(ctx, "register", err)
	}

	user, msg, err := a.backend.Register(ctx, req)
	if err != nil {
		return domain.SessionUser{}, a.fail(ctx, "register", err)
	}
	a.logger.InfoContext(logger.WithUserID(ctx, user.Email), "account registered")
	a.succeed(ctx, msg)
	return user, nil
}

// Logout ends the session.
func (a *Account) Logout(ctx context.Context) error {
	if err := a.backend.Logout(ctx); err != nil {
		return a.fail(ctx, "logout", err)
	}
	a.succeed(ctx, MsgLoggedOut)
	return nil
}

// Status reports whether the session is signed in.
func (a *Account) Status(ctx context.Context) (domain.AuthStatus, error) {
	status, err := a.backend.CheckAuth(ctx)
	if err != nil {
		return domain.AuthStatus{}, a.fail(ctx, "check auth", err)
	}
	return status, nil
}

// Profile fetches the signed-in user's profile.
func (a *Account) Profile(ctx context.Context) (domain.User, error) {
	u, err := a.backend.CurrentUser(ctx)
	if err != nil {
		return domain.User{}, a.fail(ctx, "load profile", err)
	}
	return u, nil
}

// ProfileChanges is the edit-profile form. Empty fields keep their current
// value. NewPassword is only applied together with CurrentPassword and a
// matching ConfirmPassword.
type ProfileChanges struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Phone              string `json:"phone"`
	DateOfBirth        string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender             string `json:"gender"`
	PreferredFragrance string `json:"preferred_fragrance"`

	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UpdateProfile applies changes on top of the current profile and saves it.
func (a *Account) UpdateProfile(ctx context.Context, changes ProfileChanges) error {
	if err := validator.Check(changes); err != nil {
		return a.fail(ctx, "update profile", err)
	}
	upd := api.ProfileUpdate{}
	if changes.NewPassword != "" {
		if changes.NewPassword != changes.ConfirmPassword {
			return a.fail(ctx, "update profile", apperrors.InvalidInput(MsgNewPasswordMismatch))
		}
		if changes.CurrentPassword == "" {
			return a.fail(ctx, "update profile", apperrors.InvalidInput(MsgCurrentPasswordRequired))
		}
		upd.CurrentPassword = changes.CurrentPassword
		upd.Password = changes.NewPassword
	}

	current, err := a.backend.CurrentUser(ctx)
	if err != nil {
		return a.fail(ctx, "update profile", err)
	}
	upd.FirstName = pick(changes.FirstName, current.FirstName)
	upd.LastName = pick(changes.LastName, current.LastName)
	upd.Phone = pick(changes.Phone, current.Phone)
	upd.DateOfBirth = pick(changes.DateOfBirth, current.DateOfBirth)
	upd.Gender = pick(changes.Gender, current.Gender)
	upd.PreferredFragrance = pick(changes.PreferredFragrance, current.PreferredFragrance)

	msg, err := a.backend.UpdateCurrentUser(ctx, upd)
	if err != nil {
		return a.fail(ctx, "update profile", err)
	}
	a.succeed(ctx, msg)
	return nil
}

func pick(changed, current string) string {
	if s := strings.TrimSpace(changed); s != "" {
		return s
	}
	return current
}
