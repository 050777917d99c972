// errors/session_errors.go
package errors

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session data")
	ErrStorage         = errors.New("storage operation failed")
)
