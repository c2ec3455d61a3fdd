package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryWait is the wait between retries when RetryWait is unset.
	DefaultRetryWait = 1 * time.Second
)
