package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"
)

// Send delivers the email over SMTP. Attachments are encoded as base64
// MIME parts.
func (s *senderImpl) Send(ctx context.Context, email Email) error {
	if email.Recipient == "" {
		return ErrRecipientRequired
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := buildMessage(s.config.From, email)
	if err != nil {
		return fmt.Errorf("email: build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	recipients := append([]string{email.Recipient}, email.CC...)
	if err := smtp.SendMail(addr, auth, s.config.From, recipients, msg); err != nil {
		return fmt.Errorf("email: send: %w", err)
	}
	return nil
}

func buildMessage(from string, email Email) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", email.Recipient),
	}
	if len(email.CC) > 0 {
		headers = append(headers, fmt.Sprintf("Cc: %s", strings.Join(email.CC, ", ")))
	}
	headers = append(headers,
		fmt.Sprintf("Subject: %s", email.Subject),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q", writer.Boundary()),
		"",
		"",
	)

	body, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := body.Write([]byte(email.Body)); err != nil {
		return nil, err
	}

	for _, att := range email.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		part, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {fmt.Sprintf("%s; name=%q", contentType, att.Filename)},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", att.Filename)},
		})
		if err != nil {
			return nil, err
		}
		encoded := base64.StdEncoding.EncodeToString(att.Data)
		// 76-char lines per RFC 2045.
		for len(encoded) > 0 {
			n := 76
			if len(encoded) < n {
				n = len(encoded)
			}
			if _, err := part.Write([]byte(encoded[:n] + "\r\n")); err != nil {
				return nil, err
			}
			encoded = encoded[n:]
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return append([]byte(strings.Join(headers, "\r\n")), buf.Bytes()...), nil
}
