package web

import "errors"

// Error is used to pass an error during the request through the
// application with web specific context.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in a service's logs.
func (e *Error) Error() string {
	return e.Err.Error()
}

// IsRequestError checks if an error of type Error exists.
func IsRequestError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
