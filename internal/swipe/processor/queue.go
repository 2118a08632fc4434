package processor

import (
	"context"
	"itda-server/internal/estimator"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/google/uuid"
)

// preferredSharePercent of the queue comes from campaigns matching the influencer's categories
const preferredSharePercent = 70

// QueueItem is a campaign card with the influencer's match score
type QueueItem struct {
	store.Campaign
	MatchScore int `json:"match_score"`
}

// GenerateQueue returns up to limit unseen active campaigns, capped by the
// remaining swipe budget. The result is deterministic for a fixed swipe history.
func (p *SwipeProcessor) GenerateQueue(ctx context.Context, influencerID uuid.UUID, limit int) ([]QueueItem, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "influencer_id", Value: influencerID.String()},
		observability.Field{Key: "limit", Value: limit},
	)

	influencer, err := p.getInfluencer(ctx, influencerID, ErrFailedGetQueue)
	if err != nil {
		return nil, err
	}

	n := min(limit, p.limitFor(influencer, p.now()).Remaining)
	if n <= 0 {
		return []QueueItem{}, nil
	}

	preferred, err := p.store.ListPreferredCampaigns(ctx, influencerID, influencer.Categories, preferredTarget(n))
	if err != nil {
		p.logger.Error(ctx, "failed to list preferred campaigns", err)
		return nil, ErrFailedGetQueue
	}

	queue := make([]store.Campaign, 0, n)
	queue = append(queue, preferred...)
	if len(queue) >= n {
		return toQueueItems(influencer, queue[:n]), nil
	}

	chosen := make([]uuid.UUID, len(preferred))
	for i, c := range preferred {
		chosen[i] = c.ID
	}
	general, err := p.store.ListGeneralCampaigns(ctx, influencerID, chosen, n-len(queue))
	if err != nil {
		p.logger.Error(ctx, "failed to list general campaigns", err)
		return nil, ErrFailedGetQueue
	}
	queue = append(queue, general...)
	if len(queue) > n {
		queue = queue[:n]
	}
	return toQueueItems(influencer, queue), nil
}

func toQueueItems(influencer store.Influencer, campaigns []store.Campaign) []QueueItem {
	items := make([]QueueItem, len(campaigns))
	for i, c := range campaigns {
		items[i] = QueueItem{Campaign: c, MatchScore: estimator.Score(influencer, c)}
	}
	return items
}

// preferredTarget is ceil(70% of n)
func preferredTarget(n int) int {
	return (n*preferredSharePercent + 99) / 100
}
