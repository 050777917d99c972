// errors/project_errors.go
package errors

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBusy              = errors.New("another action is in progress")
	ErrViewClosed        = errors.New("view closed")
)
