package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned to clients in the "kind" field
const (
	KindValidation      = "validation_error"
	KindUnauthenticated = "unauthenticated"
	KindAccessDenied    = "access_denied"
	KindNotFound        = "not_found"
	KindConflict        = "conflict"
	KindInternal        = "internal"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// ValidationErr creates a 422 validation error
func ValidationErr(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, KindValidation, message, nil)
}

// UnauthenticatedError creates a 401 error
func UnauthenticatedError(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, KindUnauthenticated, message, err)
}

// ForbiddenError creates a 403 access denied error
func ForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, KindAccessDenied, message, nil)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, KindNotFound, message, nil)
}

// ConflictError creates a 409 Conflict error
func ConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, KindConflict, message, nil)
}

// InternalError wraps an unexpected failure. The cause is logged, never sent.
func InternalError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, KindInternal, message, err)
}

// GetAppError returns the AppError if the error chain contains one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind checks whether err is an AppError of the given kind
func IsKind(err error, kind string) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind == kind
	}
	return false
}
