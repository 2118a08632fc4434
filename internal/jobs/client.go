package jobs

import (
	"context"
	"fmt"

	"itda-server/internal/config"
	"itda-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the part of asynq.Client the job client uses
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client handles enqueueing background jobs
type Client struct {
	client TaskEnqueuer
	logger *observability.Logger
}

// RedisOpt builds the asynq connection options from config
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient creates a new job client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) *Client {
	return NewClientWithEnqueuer(asynq.NewClient(RedisOpt(cfg)), logger)
}

// NewClientWithEnqueuer wraps an existing enqueuer
func NewClientWithEnqueuer(enqueuer TaskEnqueuer, logger *observability.Logger) *Client {
	return &Client{
		client: enqueuer,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueuePushNotification queues web push delivery for a stored notification
func (c *Client) EnqueuePushNotification(ctx context.Context, notificationID uuid.UUID) error {
	task, err := NewPushNotificationTask(PushNotificationPayload{NotificationID: notificationID})
	if err != nil {
		c.logger.Error(ctx, "failed to create push notification task", err)
		return fmt.Errorf("failed to create push notification task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue push notification task", err)
		return fmt.Errorf("failed to enqueue push notification task: %w", err)
	}

	c.logger.Debug(ctx, fmt.Sprintf("enqueued push notification task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
