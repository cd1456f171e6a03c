package utils

import "errors"

// Error taxonomy for the expense core. Handlers map these onto HTTP statuses;
// everything else is treated as an internal failure.
var (
	// ErrUnauthenticated: no credential, or an expired/invalid one.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized: valid credential, insufficient role for the action.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidTransition: a status change outside the lifecycle table.
	// Never applied silently.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrorRecordNotFound = errors.New("record not found")

	// ErrUpstreamUnavailable: the store or cache is unreachable. The core
	// does not retry; retry policy belongs to the caller.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
