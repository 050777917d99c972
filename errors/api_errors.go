// errors/api_errors.go
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork            = errors.New("network unreachable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrServer             = errors.New("server error")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoChange           = errors.New("nothing changed")
)

// APIError is a non-2xx response from the inspection backend.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (HTTP %d)", e.Err, e.StatusCode)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError maps an HTTP status to the matching sentinel.
func NewAPIError(statusCode int, message string) *APIError {
	var err error
	switch {
	case statusCode == http.StatusUnauthorized:
		err = ErrUnauthorized
	case statusCode == http.StatusForbidden:
		err = ErrForbidden
	case statusCode == http.StatusNotFound:
		err = ErrNotFound
	default:
		err = ErrServer
	}
	return &APIError{StatusCode: statusCode, Message: message, Err: err}
}

// Message returns the text a user should see for err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
