package email

import "errors"

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var (
	ErrHostRequired      = errors.New("email: smtp host is required")
	ErrFromRequired      = errors.New("email: from address is required")
	ErrRecipientRequired = errors.New("email: recipient is required")
)

func validateConfig(cfg Config) error {
	if cfg.Host == "" {
		return ErrHostRequired
	}
	if cfg.From == "" {
		return ErrFromRequired
	}
	return nil
}

// Attachment is a file attached to an email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Email is a message to deliver.
type Email struct {
	Recipient   string
	CC          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// senderImpl implements ISender.
type senderImpl struct {
	config Config
}
