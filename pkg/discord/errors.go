package discord

import "errors"

var (
	errWebhookRequired = errors.New("discord webhook id and token are required")
	errWebhookStatus   = errors.New("discord webhook returned non-2xx status")
)
