package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkghttp "smart-reply-srv/pkg/http"
	"smart-reply-srv/pkg/log"
)

func newWithConfig(l log.Logger, webhook *DiscordWebhook, cfg Config) *discordImpl {
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  pkghttp.NewClient(pkghttp.ClientConfig{Timeout: cfg.Timeout}),
	}
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

// sendEmbed posts a single embed built from options.
func (d *discordImpl) sendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	embed := Embed{
		Title:       options.Title,
		Description: truncate(options.Description, maxDescriptionLen),
		Color:       colorFor(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Footer:      options.Footer,
	}
	for _, f := range options.Fields {
		f.Value = truncate(f.Value, maxFieldValueLen)
		embed.Fields = append(embed.Fields, f)
	}
	return d.send(ctx, WebhookPayload{Embeds: []Embed{embed}})
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{Type: MessageTypeError, Title: title, Description: description}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	if id, ok := log.GetTraceIDFromContext(ctx); ok {
		opts.Footer = &EmbedFooter{Text: "trace_id: " + id}
	}
	return d.sendEmbed(ctx, opts)
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	body, status, err := d.client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		d.l.Warnf(ctx, "discord.send: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Warnf(ctx, "discord.send: status %d: %s", status, string(body))
		return fmt.Errorf("discord: webhook returned status %d", status)
	}
	return nil
}

func colorFor(t MessageType) int {
	if t == MessageTypeError {
		return colorError
	}
	return colorInfo
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
