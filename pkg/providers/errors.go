package providers

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation is returned when a backend has no implementation
// for the requested operation. Callers may fall back to a cheaper operation
// or omit the value.
var ErrUnsupportedOperation = errors.New("operation not supported by this provider")

// ErrProviderNotFound is returned by the registry for unknown provider names.
var ErrProviderNotFound = errors.New("unknown provider")

// ProviderError is a query-level rejection from a backend, safe to show to
// the user (bad query syntax, unknown field, date out of range).
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// NewProviderError creates a query-level provider error.
func NewProviderError(provider, message string) *ProviderError {
	return &ProviderError{Provider: provider, Message: message}
}
