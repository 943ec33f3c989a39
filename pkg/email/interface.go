package email

import "context"

// ISender defines the interface for sending emails.
// Implementations are safe for concurrent use.
type ISender interface {
	Send(ctx context.Context, email Email) error
}

// New creates a new SMTP email sender. Returns the interface.
func New(cfg Config) (ISender, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &senderImpl{config: cfg}, nil
}
