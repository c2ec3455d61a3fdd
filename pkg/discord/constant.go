package discord

import "time"

const (
	// WebhookBaseURL is the Discord webhook endpoint prefix.
	WebhookBaseURL = "https://discord.com/api/webhooks"

	colorInfo  = 0x3498DB
	colorError = 0xE74C3C

	maxDescriptionLen = 4000
	maxFieldValueLen  = 1000
)

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:         WebhookBaseURL,
		Timeout:         10 * time.Second,
		DefaultUsername: "smart-reply-srv",
	}
}
