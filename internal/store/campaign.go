package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const campaignColumns = `id, advertiser_id, title, description, categories, budget, min_followers, min_engagement_rate,
	deliverables, status, is_premium, urgency, view_count, like_count, super_like_count, application_count,
	created_at, updated_at`

const sqlSelectCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlSelectCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

// Preferred pool: active, unswiped, sharing at least one category.
const sqlSelectPreferredCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns c
WHERE c.status = 'active'
  AND c.categories && $2::text[]
  AND NOT EXISTS (
	SELECT 1 FROM swipe_history sh
	WHERE sh.influencer_id = $1 AND sh.campaign_id = c.id
  )
ORDER BY c.is_premium DESC,
	CASE c.urgency WHEN 'high' THEN 2 WHEN 'medium' THEN 1 ELSE 0 END DESC,
	c.budget DESC,
	c.id
LIMIT $3`

// ListPreferredCampaigns returns unswiped active campaigns overlapping categories
func (s *Store) ListPreferredCampaigns(ctx context.Context, influencerID uuid.UUID, categories []string, limit int) ([]Campaign, error) {
	campaigns := []Campaign{}
	if len(categories) == 0 || limit <= 0 {
		return campaigns, nil
	}
	err := s.db.SelectContext(ctx, &campaigns, sqlSelectPreferredCampaigns, influencerID, StringArray(categories), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferred campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlSelectGeneralCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns c
WHERE c.status = 'active'
  AND NOT (c.id = ANY($2::uuid[]))
  AND NOT EXISTS (
	SELECT 1 FROM swipe_history sh
	WHERE sh.influencer_id = $1 AND sh.campaign_id = c.id
  )
ORDER BY c.created_at DESC, c.id
LIMIT $3`

// ListGeneralCampaigns returns unswiped active campaigns by recency, skipping excludeIDs
func (s *Store) ListGeneralCampaigns(ctx context.Context, influencerID uuid.UUID, excludeIDs []uuid.UUID, limit int) ([]Campaign, error) {
	campaigns := []Campaign{}
	if limit <= 0 {
		return campaigns, nil
	}
	err := s.db.SelectContext(ctx, &campaigns, sqlSelectGeneralCampaigns, influencerID, UUIDArray(excludeIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list general campaigns: %w", err)
	}
	return campaigns, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
