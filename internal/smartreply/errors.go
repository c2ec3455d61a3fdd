package smartreply

import "errors"

// Domain errors
var (
	// ErrMessageRequired - message is missing or blank
	ErrMessageRequired = errors.New("smartreply: message is required")

	// ErrGenerateFailed - the completion call failed
	ErrGenerateFailed = errors.New("smartreply: generation failed")
)
