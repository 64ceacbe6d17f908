package common

import "errors"

// Business-rule failures surfaced directly to the caller. None of these are
// retried; each reflects a client input error or a rule conflict.
var (
	// ErrNotFound covers both "the entity does not exist" and "the entity is
	// hidden from this caller". Several ownership checks deliberately return
	// it instead of ErrForbidden so a response never confirms that someone
	// else's resource exists.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but lacks the role or
	// the ownership required for the operation.
	ErrForbidden = errors.New("not authorized")

	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSlotAlreadyBooked  = errors.New("slot already booked")
	ErrCancellationWindow = errors.New("cannot cancel booking within 1 hour of slot time")
)
