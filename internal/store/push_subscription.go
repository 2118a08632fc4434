package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpsertPushSubscriptionParams represents parameters for registering a push endpoint
type UpsertPushSubscriptionParams struct {
	UserID     uuid.UUID
	Endpoint   string
	P256dh     string
	Auth       string
	DeviceType *string
}

const pushSubscriptionColumns = `id, user_id, endpoint, p256dh, auth, device_type, created_at, updated_at`

// An endpoint re-registered by another user moves to that user
const sqlUpsertPushSubscription = `
INSERT INTO push_subscriptions (user_id, endpoint, p256dh, auth, device_type)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (endpoint) DO UPDATE
SET user_id = EXCLUDED.user_id,
    p256dh = EXCLUDED.p256dh,
    auth = EXCLUDED.auth,
    device_type = EXCLUDED.device_type,
    updated_at = NOW()
RETURNING ` + pushSubscriptionColumns

// UpsertPushSubscription registers or refreshes a push endpoint
func (s *Store) UpsertPushSubscription(ctx context.Context, params UpsertPushSubscriptionParams) (PushSubscription, error) {
	var sub PushSubscription
	err := s.db.GetContext(ctx, &sub, sqlUpsertPushSubscription,
		params.UserID, params.Endpoint, params.P256dh, params.Auth, params.DeviceType)
	if err != nil {
		return PushSubscription{}, fmt.Errorf("failed to upsert push subscription: %w", err)
	}
	return sub, nil
}

const sqlSelectPushSubscriptionsByUser = `
SELECT ` + pushSubscriptionColumns + `
FROM push_subscriptions
WHERE user_id = $1
ORDER BY created_at`

// ListPushSubscriptionsByUser lists every endpoint registered by the user
func (s *Store) ListPushSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]PushSubscription, error) {
	subs := []PushSubscription{}
	if err := s.db.SelectContext(ctx, &subs, sqlSelectPushSubscriptionsByUser, userID); err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	return subs, nil
}

const sqlDeletePushSubscription = `
DELETE FROM push_subscriptions WHERE user_id = $1 AND endpoint = $2`

// DeletePushSubscription removes one of the user's endpoints
func (s *Store) DeletePushSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error {
	res, err := s.db.ExecContext(ctx, sqlDeletePushSubscription, userID, endpoint)
	if err != nil {
		return fmt.Errorf("failed to delete push subscription: %w", err)
	}
	return expectOneRow(res)
}

const sqlDeletePushSubscriptionByID = `
DELETE FROM push_subscriptions WHERE id = $1`

// DeletePushSubscriptionByID removes an endpoint the push service reported as gone
func (s *Store) DeletePushSubscriptionByID(ctx context.Context, subscriptionID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlDeletePushSubscriptionByID, subscriptionID); err != nil {
		return fmt.Errorf("failed to delete push subscription by id: %w", err)
	}
	return nil
}
