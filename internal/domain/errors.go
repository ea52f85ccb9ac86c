package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the login and sign-up flows.
var (
	// ErrSubmitDisabled is returned when a submit is attempted while the form
	// is invalid or another submission is still in flight.
	ErrSubmitDisabled = errors.New("submit is disabled")

	// ErrUnknownField is returned when a change targets a field the form does not have.
	ErrUnknownField = errors.New("unknown form field")

	// ErrMissingTitle is a setup fault: every page must declare a title.
	ErrMissingTitle = errors.New("page title is required")

	// ErrAuthTimeout means the authentication port did not answer in time.
	ErrAuthTimeout = errors.New("authentication timed out")

	// ErrAuthUnavailable means the authentication port could not be reached
	// or answered with a transport-level error.
	ErrAuthUnavailable = errors.New("authentication service unavailable")
)
