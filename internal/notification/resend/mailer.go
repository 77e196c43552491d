package resend

import (
	"context"
	"fmt"
	"net/url"

	sdk "github.com/resend/resend-go/v2"

	"github.com/startright-uk/startright/internal/notification"
)

type mailer struct {
	client *sdk.Client
}

// NewMailer returns a notification.Mailer that delivers through the Resend API.
// An empty baseURL keeps the SDK default.
func NewMailer(apiKey, baseURL string) (notification.Mailer, error) {
	client := sdk.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base URL: %w", err)
		}
		client.BaseURL = u
	}

	return &mailer{client: client}, nil
}

// Send posts the message with its attachments. The SDK sends attachment content as a JSON array of byte values,
// the buffer form the Resend API accepts alongside base64 strings.
func (m *mailer) Send(ctx context.Context, msg *notification.Message) error {
	attachments := make([]*sdk.Attachment, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		attachments = append(attachments, &sdk.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	_, err := m.client.Emails.SendWithContext(ctx, &sdk.SendEmailRequest{
		From:        msg.From,
		To:          msg.To,
		Subject:     msg.Subject,
		Html:        msg.HTML,
		Attachments: attachments,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	return nil
}
