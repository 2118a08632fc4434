package jobs

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	// High priority queue
	TypeNotificationPush = "notifications:push"

	// Low priority queue
	TypeSwipeDailyReset = "swipes:daily_reset"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// Queues is the asynq queue priority map used by the worker
var Queues = map[string]int{
	QueueHigh:   6,
	QueueMedium: 3,
	QueueLow:    1,
}

// PushNotificationPayload identifies a stored notification to deliver
type PushNotificationPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
}

// NewPushNotificationTask creates a push delivery task
func NewPushNotificationTask(payload PushNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotificationPush, data,
		asynq.Queue(QueueHigh),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewSwipeDailyResetTask creates the midnight swipe counter reset task
func NewSwipeDailyResetTask() *asynq.Task {
	return asynq.NewTask(TypeSwipeDailyReset, nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	)
}
