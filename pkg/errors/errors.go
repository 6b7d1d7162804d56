// Package errors defines the application error taxonomy and its mapping to
// HTTP statuses and wire-level error codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors. Service and repository code wraps these so callers can
// branch with errors.Is without depending on message text.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidUser        = errors.New("no matching user")
	ErrInvalidCredentials = errors.New("password mismatch")
	ErrTokenMissing       = errors.New("token not provided")
	ErrTokenInvalid       = errors.New("token invalid or expired")
	ErrNoPermission       = errors.New("no permission")
	ErrPermissionCheck    = errors.New("permission check failed")
	ErrInternal           = errors.New("internal error")
)

// AppError is a structured application error carrying the wire code and the
// HTTP status it maps to. Message is for logs; only Code crosses the wire.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
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

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// AlreadyExists creates a 409 error.
func AlreadyExists(resource, field, value string) *AppError {
	return &AppError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s with %s %q already exists", resource, field, value),
		Status:  http.StatusConflict,
		Err:     ErrAlreadyExists,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// InvalidUser creates the 401 login failure for an unknown identifier.
func InvalidUser() *AppError {
	return &AppError{
		Code:    "INVALID_USER",
		Message: "no user matches the given identifier",
		Status:  http.StatusUnauthorized,
		Err:     ErrInvalidUser,
	}
}

// InvalidCredentials creates the 401 login failure for a password mismatch.
func InvalidCredentials() *AppError {
	return &AppError{
		Code:    "ENCRYPTION_ERROR",
		Message: "password does not match stored hash",
		Status:  http.StatusUnauthorized,
		Err:     ErrInvalidCredentials,
	}
}

// TokenMissing creates the 401 failure for an absent or malformed bearer header.
func TokenMissing() *AppError {
	return &AppError{
		Code:    "TOKEN_NOT_PROVIDED",
		Message: "authorization bearer token not provided",
		Status:  http.StatusUnauthorized,
		Err:     ErrTokenMissing,
	}
}

// TokenInvalid creates the 403 failure for a token that fails verification.
func TokenInvalid(err error) *AppError {
	return &AppError{
		Code:    "INVALID_TOKEN",
		Message: "token invalid or expired",
		Status:  http.StatusForbidden,
		Err:     errors.Join(ErrTokenInvalid, err),
	}
}

// NoPermission creates the 403 failure for a role not in the allow-list.
func NoPermission() *AppError {
	return &AppError{
		Code:    "NO_PERMISSION",
		Message: "caller role is not authorized for this operation",
		Status:  http.StatusForbidden,
		Err:     ErrNoPermission,
	}
}

// PermissionCheck creates the 500 failure for a store error during role
// resolution. Authorization fails closed.
func PermissionCheck(err error) *AppError {
	return &AppError{
		Code:    "PERMISSION_CHECK_ERROR",
		Message: "error while resolving caller role",
		Status:  http.StatusInternalServerError,
		Err:     errors.Join(ErrPermissionCheck, err),
	}
}

// Internal creates the generic 500 error. The wrapped cause is logged, never
// returned to the client.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "SERVER_ERROR_INTERNAL",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     errors.Join(ErrInternal, err),
	}
}

// HTTPStatus returns the HTTP status for any error, defaulting to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidUser), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenMissing):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrNoPermission):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the wire error code for any error, defaulting to the generic
// internal code so unexpected failures never leak detail.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "SERVER_ERROR_INTERNAL"
}
