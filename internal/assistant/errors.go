package assistant

import "errors"

// Domain errors
var (
	// ErrPromptRequired - prompt is missing or empty
	ErrPromptRequired = errors.New("assistant: prompt is required")

	// ErrGenerateFailed - the completion call failed
	ErrGenerateFailed = errors.New("assistant: generation failed")
)
