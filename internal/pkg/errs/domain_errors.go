package errs

import "errors"

// Error taxonomy shared by every service. Usecase errors are marked with exactly one of these
// so the handler boundary can pick a status without knowing the concrete error.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrNotFound              = errors.New("not found")
	ErrRateLimited           = errors.New("rate limited")
	ErrDownstreamUnavailable = errors.New("downstream service unavailable")
)

// checked in order; the first mark found wins
var taxonomy = []error{
	ErrInvalidInput,
	ErrUnauthorized,
	ErrForbidden,
	ErrNotFound,
	ErrConflict,
	ErrRateLimited,
	ErrDownstreamUnavailable,
}

// Category returns the taxonomy sentinel err is marked with, or nil for an unclassified error.
func Category(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range taxonomy {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
