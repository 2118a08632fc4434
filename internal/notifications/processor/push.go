package processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/google/uuid"
)

// RegisterPushParams is a browser PushSubscription as sent by the client
type RegisterPushParams struct {
	Endpoint   string
	P256dh     string
	Auth       string
	DeviceType string
}

// RegisterPushSubscription saves the endpoint for the user. Re-registering an
// endpoint moves it to the current user and refreshes its keys.
func (p *NotificationProcessor) RegisterPushSubscription(ctx context.Context, userID uuid.UUID, params RegisterPushParams) (store.PushSubscription, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "device_type", Value: params.DeviceType},
	)

	var deviceType *string
	if params.DeviceType != "" {
		deviceType = &params.DeviceType
	}
	sub, err := p.store.UpsertPushSubscription(ctx, store.UpsertPushSubscriptionParams{
		UserID:     userID,
		Endpoint:   params.Endpoint,
		P256dh:     params.P256dh,
		Auth:       params.Auth,
		DeviceType: deviceType,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert push subscription", err)
		return store.PushSubscription{}, ErrFailedPushSubscribe
	}
	return sub, nil
}

// UnregisterPushSubscription removes one of the user's endpoints
func (p *NotificationProcessor) UnregisterPushSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	if err := p.store.DeletePushSubscription(ctx, userID, endpoint); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSubscriptionNotFound
		}
		p.logger.Error(ctx, "failed to delete push subscription", err)
		return ErrFailedPushUnsubscribe
	}
	return nil
}
