package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"itda-server/internal/estimator"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/google/uuid"
)

type InsightsStore interface {
	GetInfluencerByID(ctx context.Context, influencerID uuid.UUID) (store.Influencer, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
}

var (
	ErrInfluencerNotFound = errors.New("influencer not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrInvalidBudget      = errors.New("budget must not be negative")
	ErrFailedLookup       = errors.New("failed to load pricing inputs")
)

type InsightsProcessor struct {
	store  InsightsStore
	logger *observability.Logger
}

func New(store InsightsStore, logger *observability.Logger) InsightsProcessor {
	return InsightsProcessor{
		store:  store,
		logger: logger,
	}
}

// PredictPriceParams selects who is priced against what. Nil overrides fall
// back to the influencer profile and the campaign.
type PredictPriceParams struct {
	InfluencerID uuid.UUID
	CampaignID   *uuid.UUID
	Category     *string
	Budget       *int64
	Deliverables *store.Deliverables
}

// PricePrediction is the estimate together with the inputs it was computed from
type PricePrediction struct {
	estimator.PriceEstimate
	InfluencerID uuid.UUID  `json:"influencer_id"`
	CampaignID   *uuid.UUID `json:"campaign_id,omitempty"`
	Category     string     `json:"category"`
	Budget       int64      `json:"budget"`
	MatchScore   *int       `json:"match_score,omitempty"`
}

// PredictPrice estimates what the influencer should charge, optionally for a specific campaign
func (p *InsightsProcessor) PredictPrice(ctx context.Context, params PredictPriceParams) (PricePrediction, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "influencer_id", Value: params.InfluencerID.String()})

	if params.Budget != nil && *params.Budget < 0 {
		return PricePrediction{}, ErrInvalidBudget
	}

	influencer, err := p.getInfluencer(ctx, params.InfluencerID)
	if err != nil {
		return PricePrediction{}, err
	}

	input := estimator.PriceInput{
		Followers:      influencer.FollowersCount,
		EngagementRate: influencer.EngagementRate,
	}
	if len(influencer.Categories) > 0 {
		input.Category = influencer.Categories[0]
	}

	result := PricePrediction{InfluencerID: influencer.ID}

	if params.CampaignID != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: params.CampaignID.String()})
		campaign, err := p.getCampaign(ctx, *params.CampaignID)
		if err != nil {
			return PricePrediction{}, err
		}
		input.Category = estimator.PricingCategory(influencer, campaign)
		input.Budget = campaign.Budget
		input.Deliverables = campaign.Deliverables

		score := estimator.Score(influencer, campaign)
		result.CampaignID = &campaign.ID
		result.MatchScore = &score
	}

	if params.Category != nil {
		input.Category = *params.Category
	}
	if params.Budget != nil {
		input.Budget = *params.Budget
	}
	if params.Deliverables != nil {
		input.Deliverables = *params.Deliverables
	}

	result.PriceEstimate = estimator.PredictPrice(input)
	result.Category = input.Category
	result.Budget = input.Budget
	return result, nil
}

// MatchScore explains how well the influencer fits the campaign
func (p *InsightsProcessor) MatchScore(ctx context.Context, influencerID, campaignID uuid.UUID) (estimator.ScoreBreakdown, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "influencer_id", Value: influencerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	influencer, err := p.getInfluencer(ctx, influencerID)
	if err != nil {
		return estimator.ScoreBreakdown{}, err
	}
	campaign, err := p.getCampaign(ctx, campaignID)
	if err != nil {
		return estimator.ScoreBreakdown{}, err
	}
	return estimator.ScoreWithBreakdown(influencer, campaign), nil
}

func (p *InsightsProcessor) getInfluencer(ctx context.Context, influencerID uuid.UUID) (store.Influencer, error) {
	influencer, err := p.store.GetInfluencerByID(ctx, influencerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Influencer{}, ErrInfluencerNotFound
		}
		p.logger.Error(ctx, "failed to get influencer", err)
		return store.Influencer{}, ErrFailedLookup
	}
	return influencer, nil
}

func (p *InsightsProcessor) getCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, ErrFailedLookup
	}
	return campaign, nil
}
