package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

type registerForm struct {
	FirstName       string `json:"first_name" validate:"required,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type lineForm struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1,lte=10"`
	Status   string `json:"status" validate:"omitempty,oneof=pending placed shipped"`
}

func validRegister() registerForm {
	return registerForm{
		FirstName:       "Ayesha",
		Email:           "ayesha@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validRegister()))
}

func TestValidate_RequiredUsesJSONName(t *testing.T) {
	form := validRegister()
	form.FirstName = ""

	err := Validate(form)
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "is required", valErr.Fields()["first_name"])
}

func TestValidate_PasswordMismatch(t *testing.T) {
	form := validRegister()
	form.ConfirmPassword = "other"

	err := Validate(form)
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Fields()["confirm_password"], "does not match")
}

func TestValidate_InvalidEmail(t *testing.T) {
	form := validRegister()
	form.Email = "not-an-email"

	err := Validate(form)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be a valid email address", valErr.Fields()["email"])
}

func TestValidate_MinLength(t *testing.T) {
	form := validRegister()
	form.Password = "abc"
	form.ConfirmPassword = "abc"

	err := Validate(form)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be at least 6 characters", valErr.Fields()["password"])
}

func TestValidate_QuantityBounds(t *testing.T) {
	err := Validate(lineForm{ID: "7", Quantity: 11})
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be less than or equal to 10", valErr.Fields()["quantity"])

	err = Validate(lineForm{ID: "7", Quantity: 0})
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be greater than or equal to 1", valErr.Fields()["quantity"])
}

func TestValidate_OneOf(t *testing.T) {
	err := Validate(lineForm{ID: "7", Quantity: 1, Status: "lost"})
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be one of: pending placed shipped", valErr.Fields()["status"])
}

func TestValidationError_ErrorJoinsFields(t *testing.T) {
	err := Validate(registerForm{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name is required")
	assert.Contains(t, err.Error(), "email is required")
}

func TestCheck_ReturnsInvalidInput(t *testing.T) {
	form := validRegister()
	form.ConfirmPassword = "nope"

	err := Check(form)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, apperrors.UserMessage(err), "confirm_password")

	var valErr *ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestCheck_Valid(t *testing.T) {
	assert.NoError(t, Check(validRegister()))
}
