package discord

import (
	"context"

	"smart-reply-srv/pkg/log"
)

// IDiscord defines the interface for Discord webhook service.
// Implementations are safe for concurrent use.
type IDiscord interface {
	// SendError posts an error embed. The trace id in ctx, if any, goes in the footer.
	SendError(ctx context.Context, title, description string, err error) error
}

// DiscordWebhook contains webhook information for Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return newWithConfig(l, webhook, DefaultConfig()), nil
}
