package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"time"

	"github.com/google/uuid"
)

// NotificationStore defines the database operations required by NotificationProcessor
type NotificationStore interface {
	CreateNotification(ctx context.Context, params store.CreateNotificationParams) (store.Notification, error)
	ListNotifications(ctx context.Context, params store.ListNotificationsParams) ([]store.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID uuid.UUID, userID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	CreateNotificationEvent(ctx context.Context, notificationID uuid.UUID, userID uuid.UUID, eventType string) error
	AppendApplicantToBatch(ctx context.Context, params store.AppendApplicantParams) (store.NotificationBatch, bool, error)
	GetNotificationBatchByID(ctx context.Context, batchID uuid.UUID) (store.NotificationBatch, error)
	ClaimDueBatchJobs(ctx context.Context, now time.Time, limit int) ([]store.NotificationBatchJob, error)
	CompleteBatchJob(ctx context.Context, job store.NotificationBatchJob, batchStatus string, now time.Time) error
	FailBatchJob(ctx context.Context, jobID uuid.UUID, reason string, maxAttempts int) error
	ReleaseStaleBatchJobs(ctx context.Context, lockedBefore time.Time, maxAttempts int) (int64, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetInfluencersByIDs(ctx context.Context, ids []uuid.UUID) ([]store.Influencer, error)
	UpsertPushSubscription(ctx context.Context, params store.UpsertPushSubscriptionParams) (store.PushSubscription, error)
	DeletePushSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error
}

// PushEnqueuer hands a stored notification to the push delivery queue
type PushEnqueuer interface {
	EnqueuePushNotification(ctx context.Context, notificationID uuid.UUID) error
}

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrSubscriptionNotFound  = errors.New("push subscription not found")
	ErrFailedCreate          = errors.New("failed to create notification")
	ErrFailedList            = errors.New("failed to list notifications")
	ErrFailedUpdate          = errors.New("failed to update notification")
	ErrFailedScheduleDigest  = errors.New("failed to schedule applicant digest")
	ErrFailedProcessDigests  = errors.New("failed to process digests")
	ErrFailedPushSubscribe   = errors.New("failed to save push subscription")
	ErrFailedPushUnsubscribe = errors.New("failed to delete push subscription")
)

const (
	// maxDigestAttempts is how many times a digest send is tried before it is marked failed
	maxDigestAttempts = 3
	// staleJobTimeout releases digest jobs left processing by a crashed worker
	staleJobTimeout  = 10 * time.Minute
	defaultBatchSize = 50
)

// Config holds digest worker settings
type Config struct {
	BatchSize int
}

type NotificationProcessor struct {
	store     NotificationStore
	pusher    PushEnqueuer
	batchSize int
	now       func() time.Time
	logger    *observability.Logger
}

// New creates a NotificationProcessor. pusher may be nil, in which case
// notifications are stored but not pushed.
func New(store NotificationStore, pusher PushEnqueuer, cfg Config, logger *observability.Logger) NotificationProcessor {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return NotificationProcessor{
		store:     store,
		pusher:    pusher,
		batchSize: batchSize,
		now:       time.Now,
		logger:    logger,
	}
}

// Notify stores an in-app notification and queues it for push delivery.
// A push queue failure is logged; the notification is still returned.
func (p *NotificationProcessor) Notify(ctx context.Context, params store.CreateNotificationParams) (store.Notification, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: params.UserID.String()},
		observability.Field{Key: "notification_type", Value: params.Type},
	)

	if params.Priority == "" {
		params.Priority = store.NotificationPriorityNormal
	}
	notification, err := p.store.CreateNotification(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create notification", err)
		return store.Notification{}, ErrFailedCreate
	}

	if p.pusher != nil {
		if err := p.pusher.EnqueuePushNotification(ctx, notification.ID); err != nil {
			p.logger.Error(ctx, "failed to enqueue push notification", err)
		}
	}
	return notification, nil
}
