package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	colorInfo    = 0x3498db
	colorWarning = 0xf1c40f
	colorError   = 0xe74c3c
)

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage sends a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed message built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := Embed{
		Title:       options.Title,
		Description: options.Description,
		Color:       colorFor(options.Type),
		Fields:      options.Fields,
		Footer:      options.Footer,
	}

	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	embed.Timestamp = ts.Format(time.RFC3339)

	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}

	return d.send(ctx, WebhookPayload{
		Username:  username,
		AvatarURL: options.AvatarURL,
		Embeds:    []Embed{embed},
	})
}

// SendError sends an error embed with the error message as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
	})
}

// SendInfo sends an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
	})
}

// Close releases client resources.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		d.l.Errorf(ctx, "discord.send: marshal payload: %v", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Errorf(ctx, "discord.send: post webhook: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		d.l.Errorf(ctx, "discord.send: webhook status %d", resp.StatusCode)
		return errWebhookStatus
	}

	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeError:
		return colorError
	case MessageTypeWarning:
		return colorWarning
	default:
		return colorInfo
	}
}
