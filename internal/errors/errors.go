package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTaskNotFound is returned when a task id does not resolve to a row.
	ErrTaskNotFound = errors.New("task not found")
	// ErrPermissionDenied is returned when a non-owner, non-admin acts on a task.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUserAlreadyExists is returned when a name or email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when name or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are unwrapped.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, ErrTaskNotFound.Error())
	case errors.Is(err, ErrPermissionDenied):
		return NewHTTPError(http.StatusForbidden, ErrPermissionDenied.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrUserAlreadyExists.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
