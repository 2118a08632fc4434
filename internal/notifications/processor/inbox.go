package processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/google/uuid"
)

// NotificationPage is one page of a user's notifications
type NotificationPage struct {
	Notifications []store.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unread_count"`
	Page          int                  `json:"page"`
	Limit         int                  `json:"limit"`
}

// ListNotifications returns the user's notifications, newest first
func (p *NotificationProcessor) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) (NotificationPage, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	notifications, err := p.store.ListNotifications(ctx, store.ListNotificationsParams{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list notifications", err)
		return NotificationPage{}, ErrFailedList
	}

	unread, err := p.store.CountUnreadNotifications(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to count unread notifications", err)
		return NotificationPage{}, ErrFailedList
	}

	return NotificationPage{
		Notifications: notifications,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
	}, nil
}

// GetUnreadCount returns how many notifications the user has not read
func (p *NotificationProcessor) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := p.store.CountUnreadNotifications(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to count unread notifications", err)
		return 0, ErrFailedList
	}
	return count, nil
}

// MarkAsRead marks one of the user's notifications read
func (p *NotificationProcessor) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "notification_id", Value: notificationID.String()},
	)

	if err := p.store.MarkNotificationRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotificationNotFound
		}
		p.logger.Error(ctx, "failed to mark notification read", err)
		return ErrFailedUpdate
	}
	return nil
}

// MarkAllAsRead marks every unread notification of the user read
func (p *NotificationProcessor) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := p.store.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()}),
			"failed to mark all notifications read", err)
		return 0, ErrFailedUpdate
	}
	return updated, nil
}

// Dismiss records that the user dismissed a notification. It is analytics
// only, so failures are logged and never returned.
func (p *NotificationProcessor) Dismiss(ctx context.Context, userID, notificationID uuid.UUID) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "notification_id", Value: notificationID.String()},
	)

	if err := p.store.CreateNotificationEvent(ctx, notificationID, userID, store.NotificationEventDismissed); err != nil {
		p.logger.InfoWithError(ctx, "failed to record notification dismissal", err)
	}
}
