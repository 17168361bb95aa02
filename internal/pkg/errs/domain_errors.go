package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Booking flow errors
	ErrIncompleteFlow = errors.New("booking flow is incomplete")
	ErrNoBooking      = errors.New("booking flow has no booking yet")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Booking management errors
	ErrNoChanges = errors.New("modification carries no changes")
)
