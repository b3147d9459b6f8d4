package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidLayerSizes = errors.New("invalid layer sizes")
	ErrShapeMismatch     = errors.New("row width does not match layer width")
	ErrNoInstances       = errors.New("instance count must be positive")
)

// LookupError reports a structural key or id that has no slot in a collection.
//
// It wraps ErrNotFound, so callers can match it with errors.Is.
type LookupError struct {
	Kind string // "neuron" or "edge"
	Key  string // formatted key or id
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Key, ErrNotFound)
}

// Unwrap returns ErrNotFound.
func (e *LookupError) Unwrap() error {
	return ErrNotFound
}
