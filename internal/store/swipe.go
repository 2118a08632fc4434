package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateSwipeParams represents parameters for recording a swipe. Today is the
// influencer's local calendar date the swipe counts against.
type CreateSwipeParams struct {
	InfluencerID uuid.UUID
	CampaignID   uuid.UUID
	Action       string
	MatchScore   int
	SwipedAt     time.Time
	Today        time.Time
	DailyLimit   int
}

const swipeColumns = `id, influencer_id, campaign_id, action, match_score, swiped_at`

const sqlSelectSwipe = `
SELECT ` + swipeColumns + `
FROM swipe_history
WHERE influencer_id = $1 AND campaign_id = $2`

// GetSwipe returns the influencer's recorded swipe on the campaign
func (s *Store) GetSwipe(ctx context.Context, influencerID, campaignID uuid.UUID) (SwipeRecord, error) {
	var record SwipeRecord
	err := s.db.GetContext(ctx, &record, sqlSelectSwipe, influencerID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SwipeRecord{}, ErrNotFound
		}
		return SwipeRecord{}, fmt.Errorf("failed to get swipe: %w", err)
	}
	return record, nil
}

const sqlCreateSwipe = `
INSERT INTO swipe_history (influencer_id, campaign_id, action, match_score, swiped_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + swipeColumns

// The counter restarts at 1 when the stored date is not today. The WHERE
// clause is re-checked under the row lock, so concurrent swipes cannot push
// the counter past the limit.
const sqlConsumeDailySwipe = `
UPDATE influencers
SET daily_swipes_count = CASE WHEN last_swipe_date = $2::date THEN daily_swipes_count + 1 ELSE 1 END,
    last_swipe_date = $2::date,
    last_swipe_at = $3,
    updated_at = $3
WHERE id = $1
  AND (last_swipe_date IS DISTINCT FROM $2::date OR daily_swipes_count < $4)
RETURNING daily_swipes_count`

const sqlIncrementCampaignCounters = `
UPDATE campaigns
SET view_count = view_count + 1,
    like_count = like_count + CASE WHEN $2 = 'like' THEN 1 ELSE 0 END,
    super_like_count = super_like_count + CASE WHEN $2 = 'super_like' THEN 1 ELSE 0 END,
    updated_at = NOW()
WHERE id = $1`

// CreateSwipe records a swipe, spends one unit of the influencer's daily
// budget and bumps the campaign counters in one transaction. Returns the
// influencer's swipe count for today.
// A second swipe on the same campaign returns ErrAlreadyExists; an exhausted
// budget returns ErrLimitReached. Neither leaves anything behind.
func (s *Store) CreateSwipe(ctx context.Context, params CreateSwipeParams) (SwipeRecord, int, error) {
	var record SwipeRecord
	var used int
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &record, sqlCreateSwipe,
			params.InfluencerID,
			params.CampaignID,
			params.Action,
			params.MatchScore,
			params.SwipedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create swipe: %w", err)
		}

		err = tx.GetContext(ctx, &used, sqlConsumeDailySwipe,
			params.InfluencerID,
			params.Today.Format(dateLayout),
			params.SwipedAt,
			params.DailyLimit)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrLimitReached
			}
			return fmt.Errorf("failed to increment daily swipe count: %w", err)
		}

		res, err := tx.ExecContext(ctx, sqlIncrementCampaignCounters, params.CampaignID, params.Action)
		if err != nil {
			return fmt.Errorf("failed to increment campaign counters: %w", err)
		}
		return expectOneRow(res)
	})
	if err != nil {
		return SwipeRecord{}, 0, err
	}
	return record, used, nil
}
