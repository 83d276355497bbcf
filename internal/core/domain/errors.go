package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrAPIKeyMissing indicates the Serper API key is not configured.
	// Any search attempt fails fast with this before performing I/O.
	ErrAPIKeyMissing = errors.New("serper API key not configured")

	// ErrEmptyQuery indicates the query was empty or whitespace-only.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidLibrary indicates an unrecognised library identifier.
	ErrInvalidLibrary = errors.New("invalid library")
)

// ProviderError is a non-2xx response from the search provider.
// It carries the status code and response body for diagnostics.
type ProviderError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("serper API error: %d - %s", e.StatusCode, e.Body)
}
