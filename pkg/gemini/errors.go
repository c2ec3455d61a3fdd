package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrAPIKeyRequired is returned by NewGemini when no key is configured.
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	// ErrMalformedResponse is returned when a successful response body is not JSON.
	ErrMalformedResponse = errors.New("gemini: malformed response body")
)

// UpstreamError reports a failed call to the Gemini API: either a transport failure
// (StatusCode 0, Err set) or a non-success status with the response body.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gemini: request failed: %v", e.Err)
	}
	return fmt.Sprintf("gemini: API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
