package gemini

import "time"

const (
	// BaseURL is the Generative Language REST endpoint for models.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when the config leaves the model empty.
	DefaultModel = "gemini-1.5-flash"
	// DefaultTimeout bounds a single generateContent call.
	DefaultTimeout = 30 * time.Second

	roleUser = "user"
)
