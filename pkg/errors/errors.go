package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
	ErrTransport    = errors.New("transport failure")
	ErrRejected     = errors.New("rejected by server")
)

// Kind classifies an error by how the user should be told about it.
type Kind string

const (
	KindTransport  Kind = "transport"
	KindRejected   Kind = "rejected"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// AppError represents a structured application error.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a not-found error for a named resource.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// InvalidInput creates a validation error. Validation always happens before
// any network call.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Kind:    KindRejected,
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthorized,
	}
}

// Transport wraps a network failure: the request never produced a usable
// answer (connection refused, timeout, open circuit, undecodable body).
func Transport(message string, err error) *AppError {
	return &AppError{
		Code:    "TRANSPORT_ERROR",
		Message: message,
		Kind:    KindTransport,
		Err:     errors.Join(ErrTransport, err),
	}
}

// Rejected creates an error for an API answer carrying success=false.
// The message is the server-provided one.
func Rejected(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	if status == http.StatusUnauthorized {
		return Unauthorized(message)
	}
	if status == http.StatusNotFound {
		return &AppError{Code: "NOT_FOUND", Message: message, Kind: KindNotFound, Status: status, Err: errors.Join(ErrRejected, ErrNotFound)}
	}
	return &AppError{
		Code:    "REJECTED",
		Message: message,
		Kind:    KindRejected,
		Status:  status,
		Err:     ErrRejected,
	}
}

// Internal creates an error for local failures such as a broken storage backend.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Kind:    KindInternal,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// KindOf reports the category of err.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != "" {
		return appErr.Kind
	}

	switch {
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrRejected), errors.Is(err, ErrUnauthorized):
		return KindRejected
	default:
		return KindInternal
	}
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "an internal error occurred"
}
