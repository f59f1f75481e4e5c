package domain

import "errors"

// Outcome taxonomy of operations against the booking API
var (
	// ErrConflict the interval is no longer free
	ErrConflict = errors.New("booking conflict")

	// ErrSession the session is missing, invalid or expired
	ErrSession = errors.New("session is invalid or expired")

	// ErrTransport network failure, timeout or server error; retryable by the user
	ErrTransport = errors.New("booking api unavailable")

	// ErrNotFound the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied the actor may not perform the operation
	ErrAccessDenied = errors.New("access denied")

	// ErrRejected the booking api rejected the request for another reason
	ErrRejected = errors.New("request rejected by booking api")
)
