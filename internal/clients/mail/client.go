package mail

import (
	"context"
	"errors"
	"fmt"
	"itda-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrMailDisabled = errors.New("email delivery is not configured")

type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

// NewResendClient returns nil when no API key is configured; a nil client
// reports IsEnabled false and refuses to send.
func NewResendClient(apiKey, from string, logger *observability.Logger) *ResendClient {
	if apiKey == "" {
		logger.Info(context.Background(), "RESEND_API_KEY not set, email delivery disabled")
		return nil
	}

	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger,
	}
}

func (c *ResendClient) IsEnabled() bool {
	return c != nil && c.client != nil
}

// SendEmail sends an HTML email from the configured sender and returns the Resend message id
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	if !c.IsEnabled() {
		return "", ErrMailDisabled
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	res, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
