package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateMatchParams represents parameters for creating a match
type CreateMatchParams struct {
	CampaignID   uuid.UUID
	InfluencerID uuid.UUID
	Action       string
	MatchScore   int
	Metadata     JSONB
}

const matchColumns = `id, campaign_id, influencer_id, status, action, match_score, agreed_price, metadata, notified_at, created_at, updated_at`

// application_count moves only when the insert actually produced a row
const sqlCreateMatch = `
WITH inserted AS (
	INSERT INTO campaign_influencers (campaign_id, influencer_id, status, action, match_score, metadata)
	VALUES ($1, $2, 'pending', $3, $4, $5)
	ON CONFLICT (campaign_id, influencer_id) DO NOTHING
	RETURNING ` + matchColumns + `
), counted AS (
	UPDATE campaigns
	SET application_count = application_count + 1,
	    updated_at = NOW()
	WHERE id = $1 AND EXISTS (SELECT 1 FROM inserted)
)
SELECT ` + matchColumns + ` FROM inserted`

// CreateMatch inserts a pending match and counts it on the campaign.
// An existing (campaign, influencer) pair returns ErrAlreadyExists.
func (s *Store) CreateMatch(ctx context.Context, params CreateMatchParams) (Match, error) {
	var match Match
	err := s.db.GetContext(ctx, &match, sqlCreateMatch,
		params.CampaignID,
		params.InfluencerID,
		params.Action,
		params.MatchScore,
		params.Metadata)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return Match{}, ErrAlreadyExists
		}
		return Match{}, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

const sqlSelectMatchByPair = `
SELECT ` + matchColumns + `
FROM campaign_influencers
WHERE campaign_id = $1 AND influencer_id = $2`

// GetMatchByPair retrieves the match between a campaign and an influencer
func (s *Store) GetMatchByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (Match, error) {
	var match Match
	err := s.db.GetContext(ctx, &match, sqlSelectMatchByPair, campaignID, influencerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Match{}, ErrNotFound
		}
		return Match{}, fmt.Errorf("failed to get match by pair: %w", err)
	}
	return match, nil
}

const sqlMarkMatchNotified = `
UPDATE campaign_influencers
SET notified_at = $2
WHERE id = $1 AND notified_at IS NULL`

// MarkMatchNotified records that the advertiser has been told about the match.
// Marking an already notified match is a no-op.
func (s *Store) MarkMatchNotified(ctx context.Context, matchID uuid.UUID, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlMarkMatchNotified, matchID, at); err != nil {
		return fmt.Errorf("failed to mark match notified: %w", err)
	}
	return nil
}

const sqlSelectMatchByID = `
SELECT ` + matchColumns + `
FROM campaign_influencers
WHERE id = $1`

// GetMatchByID retrieves a match by ID
func (s *Store) GetMatchByID(ctx context.Context, matchID uuid.UUID) (Match, error) {
	var match Match
	err := s.db.GetContext(ctx, &match, sqlSelectMatchByID, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Match{}, ErrNotFound
		}
		return Match{}, fmt.Errorf("failed to get match by id: %w", err)
	}
	return match, nil
}

const sqlSelectMatchesByInfluencer = `
SELECT ` + matchColumns + `
FROM campaign_influencers
WHERE influencer_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// ListMatchesByInfluencer lists an influencer's matches, newest first
func (s *Store) ListMatchesByInfluencer(ctx context.Context, influencerID uuid.UUID, limit, offset int) ([]Match, error) {
	matches := []Match{}
	err := s.db.SelectContext(ctx, &matches, sqlSelectMatchesByInfluencer, influencerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by influencer: %w", err)
	}
	return matches, nil
}

const sqlSelectMatchesByCampaign = `
SELECT ` + matchColumns + `
FROM campaign_influencers
WHERE campaign_id = $1
  AND ($2::text IS NULL OR status = $2)
ORDER BY match_score DESC, created_at
LIMIT $3 OFFSET $4`

// ListMatchesByCampaign lists a campaign's applicants, best score first
func (s *Store) ListMatchesByCampaign(ctx context.Context, campaignID uuid.UUID, status *string, limit, offset int) ([]Match, error) {
	matches := []Match{}
	err := s.db.SelectContext(ctx, &matches, sqlSelectMatchesByCampaign, campaignID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by campaign: %w", err)
	}
	return matches, nil
}

const sqlUpdateMatchStatus = `
UPDATE campaign_influencers
SET status = $2,
    agreed_price = COALESCE($3, agreed_price),
    updated_at = NOW()
WHERE id = $1 AND status = 'pending'
RETURNING ` + matchColumns

// ReviewMatch moves a pending match to accepted or rejected.
// Returns ErrNotFound when the match does not exist or is no longer pending.
func (s *Store) ReviewMatch(ctx context.Context, matchID uuid.UUID, status string, agreedPrice *int64) (Match, error) {
	var match Match
	err := s.db.GetContext(ctx, &match, sqlUpdateMatchStatus, matchID, status, agreedPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Match{}, ErrNotFound
		}
		return Match{}, fmt.Errorf("failed to review match: %w", err)
	}
	return match, nil
}
