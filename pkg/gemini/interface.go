package gemini

import (
	"context"
	"strings"

	pkghttp "smart-reply-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Generate sends prompt as a single user turn and returns the first candidate's text,
	// or "" when the response carries no candidate text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel, BaseURL to
// BaseURL and Timeout to DefaultTimeout. APIKey must be set.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &geminiImpl{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   cfg.Retries,
			RetryWait: cfg.RetryWait,
		}),
	}, nil
}
