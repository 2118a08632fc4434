package workers

import (
	"context"
	"fmt"
	"time"

	"itda-server/internal/observability"

	"github.com/hibiken/asynq"
)

// SwipeResetStore zeroes daily swipe counters left over from previous days
type SwipeResetStore interface {
	ResetStaleSwipeCounts(ctx context.Context, today time.Time) (int64, error)
}

// SwipeResetWorker runs the midnight counter reset. The swipe recorder also
// treats a stale date as zero, so this only keeps stored counts tidy.
type SwipeResetWorker struct {
	store    SwipeResetStore
	location *time.Location
	now      func() time.Time
	logger   *observability.Logger
}

func NewSwipeResetWorker(store SwipeResetStore, location *time.Location, logger *observability.Logger) *SwipeResetWorker {
	if location == nil {
		location = time.UTC
	}
	return &SwipeResetWorker{
		store:    store,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// ProcessSwipeResetTask processes a daily reset task (for Asynq)
func (w *SwipeResetWorker) ProcessSwipeResetTask(ctx context.Context, _ *asynq.Task) error {
	local := w.now().In(w.location)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.location)
	ctx = observability.WithFields(ctx, observability.Field{Key: "swipe_date", Value: today.Format(time.DateOnly)})

	reset, err := w.store.ResetStaleSwipeCounts(ctx, today)
	if err != nil {
		w.logger.Error(ctx, "failed to reset daily swipe counts", err)
		return fmt.Errorf("failed to reset daily swipe counts: %w", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("reset daily swipe counts for %d influencers", reset))
	return nil
}
