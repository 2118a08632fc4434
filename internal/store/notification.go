package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateNotificationParams represents parameters for creating a notification
type CreateNotificationParams struct {
	UserID   uuid.UUID
	Type     string
	Title    string
	Message  string
	Metadata JSONB
	Priority string
}

const notificationColumns = `id, user_id, type, title, message, metadata, priority, is_read, read_at, created_at`

const sqlCreateNotification = `
INSERT INTO notifications (user_id, type, title, message, metadata, priority)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + notificationColumns

// CreateNotification inserts an unread notification
func (s *Store) CreateNotification(ctx context.Context, params CreateNotificationParams) (Notification, error) {
	var notification Notification
	err := s.db.GetContext(ctx, &notification, sqlCreateNotification,
		params.UserID,
		params.Type,
		params.Title,
		params.Message,
		params.Metadata,
		params.Priority)
	if err != nil {
		return Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return notification, nil
}

const sqlSelectNotificationByID = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE id = $1`

// GetNotificationByID retrieves a notification by ID
func (s *Store) GetNotificationByID(ctx context.Context, notificationID uuid.UUID) (Notification, error) {
	var notification Notification
	err := s.db.GetContext(ctx, &notification, sqlSelectNotificationByID, notificationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Notification{}, ErrNotFound
		}
		return Notification{}, fmt.Errorf("failed to get notification by id: %w", err)
	}
	return notification, nil
}

// ListNotificationsParams represents filters for listing notifications
type ListNotificationsParams struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
	Offset     int
}

const sqlSelectNotifications = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id = $1
  AND (NOT $2 OR is_read = FALSE)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`

// ListNotifications lists a user's notifications, newest first
func (s *Store) ListNotifications(ctx context.Context, params ListNotificationsParams) ([]Notification, error) {
	notifications := []Notification{}
	err := s.db.SelectContext(ctx, &notifications, sqlSelectNotifications,
		params.UserID, params.UnreadOnly, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

const sqlCountUnreadNotifications = `
SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

// CountUnreadNotifications counts a user's unread notifications
func (s *Store) CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountUnreadNotifications, userID); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

const sqlMarkNotificationRead = `
UPDATE notifications
SET is_read = TRUE, read_at = COALESCE(read_at, NOW())
WHERE id = $1 AND user_id = $2`

// MarkNotificationRead marks one of the user's notifications read
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlMarkNotificationRead, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return expectOneRow(res)
}

const sqlMarkAllNotificationsRead = `
UPDATE notifications
SET is_read = TRUE, read_at = NOW()
WHERE user_id = $1 AND is_read = FALSE`

// MarkAllNotificationsRead marks every unread notification of the user read
func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlMarkAllNotificationsRead, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return res.RowsAffected()
}

const sqlCreateNotificationEvent = `
INSERT INTO notification_events (notification_id, user_id, event_type)
VALUES ($1, $2, $3)`

// CreateNotificationEvent records an interaction with a notification
func (s *Store) CreateNotificationEvent(ctx context.Context, notificationID, userID uuid.UUID, eventType string) error {
	if _, err := s.db.ExecContext(ctx, sqlCreateNotificationEvent, notificationID, userID, eventType); err != nil {
		return fmt.Errorf("failed to create notification event: %w", err)
	}
	return nil
}
