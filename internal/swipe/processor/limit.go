package processor

import (
	"context"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// SwipeLimit is the influencer's swipe budget for the current local day
type SwipeLimit struct {
	CanSwipe   bool      `json:"can_swipe"`
	Remaining  int       `json:"remaining"`
	Used       int       `json:"used"`
	DailyLimit int       `json:"daily_limit"`
	ResetAt    time.Time `json:"reset_at"`
}

// CheckSwipeLimit reports how many swipes the influencer has left today.
// It never consumes budget; RecordSwipe increments the counter.
func (p *SwipeProcessor) CheckSwipeLimit(ctx context.Context, influencerID uuid.UUID) (SwipeLimit, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "influencer_id", Value: influencerID.String()})

	influencer, err := p.getInfluencer(ctx, influencerID, ErrFailedGetLimit)
	if err != nil {
		return SwipeLimit{}, err
	}
	return p.limitFor(influencer, p.now()), nil
}

// limitFor applies the lazy reset: a counter stamped with another day counts as zero
func (p *SwipeProcessor) limitFor(influencer store.Influencer, now time.Time) SwipeLimit {
	local := now.In(p.location)

	used := 0
	if influencer.LastSwipeDate != nil && influencer.LastSwipeDate.Format(dateLayout) == local.Format(dateLayout) {
		used = influencer.DailySwipesCount
	}
	remaining := max(0, p.dailyLimit-used)

	y, m, d := local.Date()
	return SwipeLimit{
		CanSwipe:   remaining > 0,
		Remaining:  remaining,
		Used:       used,
		DailyLimit: p.dailyLimit,
		ResetAt:    time.Date(y, m, d+1, 0, 0, 0, 0, p.location),
	}
}
