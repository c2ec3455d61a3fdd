package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
// Retries counts extra attempts made after a transport error or a 5xx response;
// zero means a single attempt.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client    *http.Client
	retries   int
	retryWait time.Duration
}
