package processor

import (
	"context"
	"errors"
	"fmt"
	"itda-server/internal/estimator"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/google/uuid"
)

const welcomeMessage = "매칭되었습니다! 캠페인에 대해 자유롭게 이야기를 나눠보세요."

// SwipeResult is the outcome of RecordSwipe
type SwipeResult struct {
	Swipe      *store.SwipeRecord `json:"swipe,omitempty"`
	Duplicate  bool               `json:"duplicate"`
	Match      *store.Match       `json:"match,omitempty"`
	ChatRoomID *uuid.UUID         `json:"chat_room_id,omitempty"`
	Remaining  int                `json:"remaining"`
}

func validAction(action string) bool {
	switch action {
	case store.SwipeActionLike, store.SwipeActionPass, store.SwipeActionSuperLike:
		return true
	}
	return false
}

// RecordSwipe stores the influencer's decision on a campaign and, for likes
// and super likes, opens the match, chat room and advertiser notification.
// Repeating a swipe reports success without spending budget, and finishes
// whatever an earlier failed call left undone.
func (p *SwipeProcessor) RecordSwipe(ctx context.Context, influencerID, campaignID uuid.UUID, action string) (SwipeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "influencer_id", Value: influencerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "action", Value: action},
	)

	if !validAction(action) {
		return SwipeResult{}, ErrInvalidAction
	}

	influencer, err := p.getInfluencer(ctx, influencerID, ErrFailedRecordSwipe)
	if err != nil {
		return SwipeResult{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SwipeResult{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return SwipeResult{}, ErrFailedRecordSwipe
	}

	now := p.now()
	limit := p.limitFor(influencer, now)

	existing, err := p.store.GetSwipe(ctx, influencerID, campaignID)
	switch {
	case err == nil:
		return p.replaySwipe(ctx, influencer, campaign, existing, limit.Remaining)
	case !errors.Is(err, store.ErrNotFound):
		p.logger.Error(ctx, "failed to look up swipe", err)
		return SwipeResult{}, ErrFailedRecordSwipe
	}

	if campaign.Status != store.CampaignStatusActive {
		return SwipeResult{}, ErrCampaignNotActive
	}
	if !limit.CanSwipe {
		return SwipeResult{}, ErrSwipeLimitReached
	}

	score := estimator.Score(influencer, campaign)
	swipe, used, err := p.store.CreateSwipe(ctx, store.CreateSwipeParams{
		InfluencerID: influencerID,
		CampaignID:   campaignID,
		Action:       action,
		MatchScore:   score,
		SwipedAt:     now,
		Today:        now.In(p.location),
		DailyLimit:   p.dailyLimit,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLimitReached):
			return SwipeResult{}, ErrSwipeLimitReached
		case errors.Is(err, store.ErrAlreadyExists):
			// lost a race with an identical request
			existing, getErr := p.store.GetSwipe(ctx, influencerID, campaignID)
			if getErr != nil {
				p.logger.Error(ctx, "failed to get concurrently recorded swipe", getErr)
				return SwipeResult{}, ErrFailedRecordSwipe
			}
			return p.replaySwipe(ctx, influencer, campaign, existing, limit.Remaining)
		}
		p.logger.Error(ctx, "failed to create swipe", err)
		return SwipeResult{}, ErrFailedRecordSwipe
	}
	result := SwipeResult{Swipe: &swipe, Remaining: max(0, p.dailyLimit-used)}

	p.logger.Metrics(ctx,
		observability.MetricField{Key: "swipe_recorded", Value: action},
		observability.MetricField{Key: "match_score", Value: score},
		observability.MetricField{Key: "daily_swipes_used", Value: used},
	)
	p.publishSwipe(ctx, swipe)

	if !store.IsPositiveSwipe(action) {
		return result, nil
	}

	if err := p.openMatch(ctx, influencer, campaign, swipe, &result); err != nil {
		p.logger.Error(ctx, "failed to open match", err)
		return SwipeResult{}, ErrFailedRecordSwipe
	}
	return result, nil
}

// replaySwipe answers a repeated swipe. The stored action wins over the
// requested one, and any match steps still outstanding are completed.
func (p *SwipeProcessor) replaySwipe(ctx context.Context, influencer store.Influencer, campaign store.Campaign, swipe store.SwipeRecord, remaining int) (SwipeResult, error) {
	p.logger.Info(ctx, "campaign already swiped")
	result := SwipeResult{Swipe: &swipe, Duplicate: true, Remaining: remaining}

	if !store.IsPositiveSwipe(swipe.Action) {
		return result, nil
	}
	if err := p.openMatch(ctx, influencer, campaign, swipe, &result); err != nil {
		p.logger.Error(ctx, "failed to complete match for repeated swipe", err)
		return SwipeResult{}, ErrFailedRecordSwipe
	}
	return result, nil
}

// openMatch creates the match, the chat room and the advertiser notification.
// Each step tolerates having already run; the advertiser is notified until
// the match carries a notified_at stamp.
func (p *SwipeProcessor) openMatch(ctx context.Context, influencer store.Influencer, campaign store.Campaign, swipe store.SwipeRecord, result *SwipeResult) error {
	price := estimator.PredictForMatch(influencer, campaign)

	match, err := p.store.CreateMatch(ctx, store.CreateMatchParams{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Action:       swipe.Action,
		MatchScore:   swipe.MatchScore,
		Metadata: store.JSONB{
			"match_score":      swipe.MatchScore,
			"predicted_price":  price.EstimatedPrice,
			"price_min":        price.MinPrice,
			"price_max":        price.MaxPrice,
			"price_confidence": estimator.ClampConfidence(price.Confidence),
		},
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		match, err = p.store.GetMatchByPair(ctx, campaign.ID, influencer.ID)
	}
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	result.Match = &match

	room, _, err := p.store.EnsureChatRoom(ctx, store.EnsureChatRoomParams{
		CampaignID:     campaign.ID,
		AdvertiserID:   campaign.AdvertiserID,
		InfluencerID:   influencer.ID,
		WelcomeMessage: welcomeMessage,
		CreatedAt:      swipe.SwipedAt,
	})
	if err != nil {
		return fmt.Errorf("ensure chat room: %w", err)
	}
	result.ChatRoomID = &room.ID

	if match.NotifiedAt != nil {
		return nil
	}

	if err := p.notifyAdvertiser(ctx, influencer, campaign, match, room.ID); err != nil {
		return fmt.Errorf("notify advertiser: %w", err)
	}
	if err := p.store.MarkMatchNotified(ctx, match.ID, p.now()); err != nil {
		return fmt.Errorf("mark match notified: %w", err)
	}
	if err := p.publisher.PublishMatchCreated(ctx, match, campaign.AdvertiserID); err != nil {
		p.logger.InfoWithError(ctx, "failed to publish match.created event", err)
	}
	return nil
}

// notifyAdvertiser sends super likes immediately and folds likes into the digest
func (p *SwipeProcessor) notifyAdvertiser(ctx context.Context, influencer store.Influencer, campaign store.Campaign, match store.Match, roomID uuid.UUID) error {
	if match.Action == store.SwipeActionSuperLike {
		_, err := p.notifier.Notify(ctx, store.CreateNotificationParams{
			UserID:   campaign.AdvertiserID,
			Type:     store.NotificationTypeSuperLike,
			Title:    "슈퍼 라이크를 받았습니다!",
			Message:  fmt.Sprintf("%s 캠페인에 인플루언서가 슈퍼 라이크를 보냈습니다. (매칭 점수 %d점)", campaign.Title, match.MatchScore),
			Priority: store.NotificationPriorityHigh,
			Metadata: store.JSONB{
				"campaign_id":   campaign.ID.String(),
				"influencer_id": influencer.ID.String(),
				"match_id":      match.ID.String(),
				"chat_room_id":  roomID.String(),
				"match_score":   match.MatchScore,
			},
		})
		return err
	}

	return p.batcher.ScheduleApplicantNotification(ctx, campaign.ID, campaign.AdvertiserID, store.Applicant{
		InfluencerID: influencer.ID,
		MatchID:      match.ID,
		Action:       match.Action,
		MatchScore:   match.MatchScore,
		AppliedAt:    match.CreatedAt,
	})
}

func (p *SwipeProcessor) publishSwipe(ctx context.Context, swipe store.SwipeRecord) {
	if err := p.publisher.PublishSwipeRecorded(ctx, swipe); err != nil {
		p.logger.InfoWithError(ctx, "failed to publish swipe.recorded event", err)
	}
}
