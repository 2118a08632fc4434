package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// dateLayout is how calendar dates are passed to DATE columns
const dateLayout = "2006-01-02"

const influencerColumns = `id, instagram_handle, followers_count, engagement_rate, categories, tier, is_verified,
	daily_swipes_count, last_swipe_date, last_swipe_at, created_at, updated_at`

const sqlSelectInfluencerByID = `
SELECT ` + influencerColumns + `
FROM influencers
WHERE id = $1`

// GetInfluencerByID retrieves an influencer profile by ID
func (s *Store) GetInfluencerByID(ctx context.Context, influencerID uuid.UUID) (Influencer, error) {
	var influencer Influencer
	err := s.db.GetContext(ctx, &influencer, sqlSelectInfluencerByID, influencerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Influencer{}, ErrNotFound
		}
		return Influencer{}, fmt.Errorf("failed to get influencer by id: %w", err)
	}
	return influencer, nil
}

const sqlSelectInfluencersByIDs = `
SELECT ` + influencerColumns + `
FROM influencers
WHERE id = ANY($1::uuid[])`

// GetInfluencersByIDs retrieves every influencer in ids; missing ids are skipped
func (s *Store) GetInfluencersByIDs(ctx context.Context, ids []uuid.UUID) ([]Influencer, error) {
	influencers := []Influencer{}
	if len(ids) == 0 {
		return influencers, nil
	}
	err := s.db.SelectContext(ctx, &influencers, sqlSelectInfluencersByIDs, UUIDArray(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get influencers by ids: %w", err)
	}
	return influencers, nil
}

const sqlResetStaleSwipeCounts = `
UPDATE influencers
SET daily_swipes_count = 0
WHERE daily_swipes_count > 0
  AND (last_swipe_date IS NULL OR last_swipe_date < $1::date)`

// ResetStaleSwipeCounts zeroes counters whose date is before today
func (s *Store) ResetStaleSwipeCounts(ctx context.Context, today time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlResetStaleSwipeCounts, today.Format(dateLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to reset stale swipe counts: %w", err)
	}
	return res.RowsAffected()
}
