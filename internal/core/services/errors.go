package services

import "errors"

// ValidationError is malformed or incomplete user input. It is rendered
// inline next to the offending field and never causes a view transition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

var (
	// ErrBusy rejects a wizard transition while a payment is in flight. The
	// draft has a single logical writer at a time.
	ErrBusy = errors.New("another operation is in progress")

	// ErrSessionExpired means a view that needs the draft found no selected
	// train in it. The caller is redirected to a view that can repair it.
	ErrSessionExpired = errors.New("booking session expired, please select a train again")

	// ErrInvalidCredentials is the only detail a failed login leaks.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoBooking means no completed booking is stored on this device.
	ErrNoBooking = errors.New("booking not completed yet")
)
