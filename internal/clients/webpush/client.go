package webpush

import (
	"context"
	"errors"
	"fmt"
	"io"
	"itda-server/internal/config"
	"itda-server/internal/observability"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
)

var (
	// ErrSubscriptionGone means the push service no longer knows the endpoint
	ErrSubscriptionGone = errors.New("push subscription expired or unsubscribed")
	ErrPushDisabled     = errors.New("web push is not configured")
)

const defaultTTL = 24 * 60 * 60

// Subscription is the browser-issued endpoint and keys
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Client sends Web Push messages signed with the server's VAPID keys
type Client struct {
	opts   webpush.Options
	send   func(ctx context.Context, payload []byte, sub *webpush.Subscription, opts *webpush.Options) (*http.Response, error)
	logger *observability.Logger
}

// NewClient returns nil when VAPID keys are missing
func NewClient(cfg config.PushConfig, logger *observability.Logger) *Client {
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		logger.Info(context.Background(), "VAPID keys not set, web push disabled")
		return nil
	}

	return &Client{
		opts: webpush.Options{
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             defaultTTL,
		},
		send:   webpush.SendNotificationWithContext,
		logger: logger,
	}
}

func (c *Client) IsEnabled() bool {
	return c != nil
}

// Send delivers payload to one subscription. High urgency asks the push
// service to wake the device. ErrSubscriptionGone is returned for 404 and 410.
func (c *Client) Send(ctx context.Context, sub Subscription, payload []byte, highUrgency bool) error {
	if !c.IsEnabled() {
		return ErrPushDisabled
	}

	opts := c.opts
	opts.Urgency = webpush.UrgencyNormal
	if highUrgency {
		opts.Urgency = webpush.UrgencyHigh
	}

	resp, err := c.send(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &opts)
	if err != nil {
		return fmt.Errorf("failed to send web push: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push service responded with status %d", resp.StatusCode)
	}
	return nil
}
