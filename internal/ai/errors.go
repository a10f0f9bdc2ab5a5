package ai

import "errors"

// Domain-specific errors for the AI package.
var (
	// ErrModelUnavailable indicates the model gateway could not produce a
	// completion.
	ErrModelUnavailable = errors.New("model unavailable")
)
