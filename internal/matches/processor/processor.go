package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/google/uuid"
)

type MatchStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetMatchByID(ctx context.Context, matchID uuid.UUID) (store.Match, error)
	ListMatchesByInfluencer(ctx context.Context, influencerID uuid.UUID, limit, offset int) ([]store.Match, error)
	ListMatchesByCampaign(ctx context.Context, campaignID uuid.UUID, status *string, limit, offset int) ([]store.Match, error)
	ReviewMatch(ctx context.Context, matchID uuid.UUID, status string, agreedPrice *int64) (store.Match, error)
}

// Notifier tells the influencer about the review outcome
type Notifier interface {
	Notify(ctx context.Context, params store.CreateNotificationParams) (store.Notification, error)
}

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrNotCampaignOwner  = errors.New("campaign belongs to another advertiser")
	ErrMatchNotPending   = errors.New("match has already been reviewed")
	ErrInvalidStatus     = errors.New("invalid match status")
	ErrInvalidPrice      = errors.New("agreed price must not be negative")
	ErrFailedListMatches = errors.New("failed to list matches")
	ErrFailedReview      = errors.New("failed to review match")
)

type MatchProcessor struct {
	store    MatchStore
	notifier Notifier
	logger   *observability.Logger
}

func New(store MatchStore, notifier Notifier, logger *observability.Logger) MatchProcessor {
	return MatchProcessor{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// ListInfluencerMatches lists the influencer's matches, newest first
func (p *MatchProcessor) ListInfluencerMatches(ctx context.Context, influencerID uuid.UUID, page, limit int) ([]store.Match, error) {
	matches, err := p.store.ListMatchesByInfluencer(ctx, influencerID, limit, (page-1)*limit)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "influencer_id", Value: influencerID.String()}),
			"failed to list influencer matches", err)
		return nil, ErrFailedListMatches
	}
	return matches, nil
}

// ListCampaignMatches lists applicants of a campaign owned by the advertiser,
// best match score first. An empty status lists every status.
func (p *MatchProcessor) ListCampaignMatches(ctx context.Context, advertiserID, campaignID uuid.UUID, status string, page, limit int) ([]store.Match, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "advertiser_id", Value: advertiserID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	var statusFilter *string
	if status != "" {
		if !isMatchStatus(status) {
			return nil, ErrInvalidStatus
		}
		statusFilter = &status
	}

	if _, err := p.ownedCampaign(ctx, advertiserID, campaignID); err != nil {
		return nil, err
	}

	matches, err := p.store.ListMatchesByCampaign(ctx, campaignID, statusFilter, limit, (page-1)*limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign matches", err)
		return nil, ErrFailedListMatches
	}
	return matches, nil
}

// ReviewParams is the advertiser's decision on a pending match
type ReviewParams struct {
	Status      string
	AgreedPrice *int64
}

// ReviewMatch accepts or rejects a pending match and notifies the influencer
func (p *MatchProcessor) ReviewMatch(ctx context.Context, advertiserID, matchID uuid.UUID, params ReviewParams) (store.Match, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "advertiser_id", Value: advertiserID.String()},
		observability.Field{Key: "match_id", Value: matchID.String()},
		observability.Field{Key: "status", Value: params.Status},
	)

	if params.Status != store.MatchStatusAccepted && params.Status != store.MatchStatusRejected {
		return store.Match{}, ErrInvalidStatus
	}
	if params.AgreedPrice != nil && *params.AgreedPrice < 0 {
		return store.Match{}, ErrInvalidPrice
	}

	match, err := p.store.GetMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Match{}, ErrMatchNotFound
		}
		p.logger.Error(ctx, "failed to get match", err)
		return store.Match{}, ErrFailedReview
	}

	campaign, err := p.ownedCampaign(ctx, advertiserID, match.CampaignID)
	if err != nil {
		return store.Match{}, err
	}

	if match.Status != store.MatchStatusPending {
		return store.Match{}, ErrMatchNotPending
	}

	reviewed, err := p.store.ReviewMatch(ctx, matchID, params.Status, params.AgreedPrice)
	if err != nil {
		// lost a race with another review
		if errors.Is(err, store.ErrNotFound) {
			return store.Match{}, ErrMatchNotPending
		}
		p.logger.Error(ctx, "failed to review match", err)
		return store.Match{}, ErrFailedReview
	}

	if _, err := p.notifier.Notify(ctx, reviewNotification(reviewed, campaign)); err != nil {
		p.logger.InfoWithError(ctx, "failed to notify influencer of review", err)
	}

	p.logger.Info(ctx, "match reviewed")
	return reviewed, nil
}

func (p *MatchProcessor) ownedCampaign(ctx context.Context, advertiserID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, ErrFailedReview
	}
	if campaign.AdvertiserID != advertiserID {
		return store.Campaign{}, ErrNotCampaignOwner
	}
	return campaign, nil
}

func reviewNotification(match store.Match, campaign store.Campaign) store.CreateNotificationParams {
	metadata := store.JSONB{
		"match_id":       match.ID.String(),
		"campaign_id":    campaign.ID.String(),
		"campaign_title": campaign.Title,
	}
	if match.AgreedPrice != nil {
		metadata["agreed_price"] = *match.AgreedPrice
	}

	if match.Status == store.MatchStatusAccepted {
		return store.CreateNotificationParams{
			UserID:   match.InfluencerID,
			Type:     store.NotificationTypeMatchAccepted,
			Title:    "매칭이 수락되었어요!",
			Message:  campaign.Title + " 캠페인에 함께하게 되었어요. 채팅방에서 세부 사항을 논의해보세요.",
			Metadata: metadata,
			Priority: store.NotificationPriorityHigh,
		}
	}
	return store.CreateNotificationParams{
		UserID:   match.InfluencerID,
		Type:     store.NotificationTypeMatchRejected,
		Title:    "매칭 결과 안내",
		Message:  campaign.Title + " 캠페인과는 이번에 함께하지 못하게 되었어요.",
		Metadata: metadata,
		Priority: store.NotificationPriorityNormal,
	}
}

func isMatchStatus(status string) bool {
	switch status {
	case store.MatchStatusPending, store.MatchStatusAccepted, store.MatchStatusRejected:
		return true
	}
	return false
}
