// internal/apperrors/errors.go
package apperrors

import "errors"

// Error kinds shared across services and the queue bridge. Services wrap
// these with fmt.Errorf("%w: ...") so handlers can classify failures
// with errors.Is without matching on message text.
var (
	// ErrBadInput marks format or range validation failures. Terminal
	// for the request; nothing was written.
	ErrBadInput = errors.New("bad input")

	// ErrConflict marks a uniqueness violation on create, surfaced from
	// the store's constraint rather than an in-memory pre-check.
	ErrConflict = errors.New("already exists")

	// ErrNotFound marks a lookup, delete or update whose target is absent.
	ErrNotFound = errors.New("not found")

	// ErrTransient marks store or broker unavailability. Consumer-side
	// transients are retried via queue redelivery; producer-side ones are
	// surfaced to the caller.
	ErrTransient = errors.New("temporarily unavailable")
)
