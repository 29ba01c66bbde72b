// Package domain holds sentinel errors shared across use cases and
// transport.
package domain

import "errors"

var (
	// ErrInvalidRequest signals a malformed inbound search request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNoBackend signals that no search backend client was configured.
	// This is the only configuration error surfaced from the search core.
	ErrNoBackend = errors.New("no search backend configured")
	// ErrBackendUnavailable signals a failed backend round-trip. Inside
	// the tier fallback this is recovered by advancing to the next tier;
	// it only reaches callers of direct (non-tiered) queries.
	ErrBackendUnavailable = errors.New("search backend unavailable")
)
