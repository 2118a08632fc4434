package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=push_worker.go -destination=mocks_test.go -package=workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"itda-server/internal/clients/webpush"
	"itda-server/internal/jobs"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// PushStore defines the database operations required by PushWorker
type PushStore interface {
	GetNotificationByID(ctx context.Context, notificationID uuid.UUID) (store.Notification, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	ListPushSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]store.PushSubscription, error)
	DeletePushSubscriptionByID(ctx context.Context, subscriptionID uuid.UUID) error
}

// PushSender delivers one Web Push message
type PushSender interface {
	Send(ctx context.Context, sub webpush.Subscription, payload []byte, highUrgency bool) error
}

// Mailer sends transactional email
type Mailer interface {
	IsEnabled() bool
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

// ErrPushDeliveryFailed is returned when no subscription accepted the message
var ErrPushDeliveryFailed = errors.New("push delivery failed for every subscription")

// PushMessage is the JSON body the service worker receives
type PushMessage struct {
	NotificationID uuid.UUID   `json:"notification_id"`
	Type           string      `json:"type"`
	Title          string      `json:"title"`
	Body           string      `json:"body"`
	Priority       string      `json:"priority"`
	URL            string      `json:"url"`
	Data           store.JSONB `json:"data,omitempty"`
}

var emailTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>{{.Title}}</h2>
  <p>{{.Body}}</p>
  <p><a href="{{.URL}}">ITDA에서 확인하기</a></p>
</body>
</html>`))

// PushWorker fans a stored notification out to the user's devices and, for
// high priority notifications, to email.
type PushWorker struct {
	store     PushStore
	sender    PushSender
	mailer    Mailer
	webAppURI string
	logger    *observability.Logger
}

// NewPushWorker creates a push worker. sender and mailer may be nil.
func NewPushWorker(store PushStore, sender PushSender, mailer Mailer, webAppURI string, logger *observability.Logger) *PushWorker {
	return &PushWorker{
		store:     store,
		sender:    sender,
		mailer:    mailer,
		webAppURI: strings.TrimRight(webAppURI, "/"),
		logger:    logger,
	}
}

// ProcessPushTask processes a push notification task (for Asynq)
func (w *PushWorker) ProcessPushTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.PushNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal push notification payload", err)
		return fmt.Errorf("failed to unmarshal push notification payload: %v: %w", err, asynq.SkipRetry)
	}
	retryCount, _ := asynq.GetRetryCount(ctx)
	return w.deliver(ctx, payload.NotificationID, retryCount == 0)
}

func (w *PushWorker) deliver(ctx context.Context, notificationID uuid.UUID, firstAttempt bool) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "notification_id", Value: notificationID.String()})

	notification, err := w.store.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.logger.Warn(ctx, "notification no longer exists, dropping push")
			return fmt.Errorf("notification %s not found: %w", notificationID, asynq.SkipRetry)
		}
		w.logger.Error(ctx, "failed to get notification", err)
		return fmt.Errorf("failed to get notification: %w", err)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: notification.UserID.String()},
		observability.Field{Key: "notification_type", Value: notification.Type},
	)

	msg := PushMessage{
		NotificationID: notification.ID,
		Type:           notification.Type,
		Title:          notification.Title,
		Body:           notification.Message,
		Priority:       notification.Priority,
		URL:            w.link(notification),
		Data:           notification.Metadata,
	}
	high := notification.Priority == store.NotificationPriorityHigh

	pushErr := w.push(ctx, notification.UserID, msg, high)

	// retries only redo the push fan-out
	if high && firstAttempt {
		w.email(ctx, notification.UserID, msg)
	}
	return pushErr
}

func (w *PushWorker) push(ctx context.Context, userID uuid.UUID, msg PushMessage, high bool) error {
	if w.sender == nil {
		return nil
	}

	subs, err := w.store.ListPushSubscriptionsByUser(ctx, userID)
	if err != nil {
		w.logger.Error(ctx, "failed to list push subscriptions", err)
		return fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %v: %w", err, asynq.SkipRetry)
	}

	delivered, failed := 0, 0
	for _, sub := range subs {
		err := w.sender.Send(ctx, webpush.Subscription{
			Endpoint: sub.Endpoint,
			P256dh:   sub.P256dh,
			Auth:     sub.Auth,
		}, body, high)
		switch {
		case err == nil:
			delivered++
		case errors.Is(err, webpush.ErrSubscriptionGone):
			subCtx := observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: sub.ID.String()})
			w.logger.Info(subCtx, "removing expired push subscription")
			if err := w.store.DeletePushSubscriptionByID(ctx, sub.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				w.logger.Error(subCtx, "failed to delete expired push subscription", err)
			}
		default:
			failed++
			w.logger.InfoWithError(ctx, "failed to send web push", err)
		}
	}

	w.logger.Info(ctx, fmt.Sprintf("push fan-out finished: %d delivered, %d failed", delivered, failed))
	if delivered == 0 && failed > 0 {
		return ErrPushDeliveryFailed
	}
	return nil
}

func (w *PushWorker) email(ctx context.Context, userID uuid.UUID, msg PushMessage) {
	if w.mailer == nil || !w.mailer.IsEnabled() {
		return
	}

	user, err := w.store.GetUserByID(ctx, userID)
	if err != nil {
		w.logger.Error(ctx, "failed to get user for notification email", err)
		return
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, msg); err != nil {
		w.logger.Error(ctx, "failed to render notification email", err)
		return
	}

	if _, err := w.mailer.SendEmail(ctx, user.Email, msg.Title, buf.String()); err != nil {
		w.logger.Error(ctx, "failed to send notification email", err)
	}
}

// link points the notification at the screen it concerns
func (w *PushWorker) link(n store.Notification) string {
	switch n.Type {
	case store.NotificationTypeNewMessage:
		if roomID, ok := n.Metadata["room_id"].(string); ok {
			return fmt.Sprintf("%s/chat/%s", w.webAppURI, roomID)
		}
	case store.NotificationTypeApplicantBatch, store.NotificationTypeSuperLike:
		if campaignID, ok := n.Metadata["campaign_id"].(string); ok {
			return fmt.Sprintf("%s/campaigns/%s/applicants", w.webAppURI, campaignID)
		}
	case store.NotificationTypeMatchAccepted, store.NotificationTypeMatchRejected:
		return w.webAppURI + "/matches"
	}
	return w.webAppURI + "/notifications"
}
