package events

import (
	"context"
	"itda-server/internal/clients/kafka"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"time"

	"github.com/google/uuid"
)

const (
	EventSwipeRecorded = "swipe.recorded"
	EventMatchCreated  = "match.created"
)

// EventProducer is satisfied by *kafka.Producer
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka. With no producer
// configured every publish is a no-op.
type Publisher struct {
	producer EventProducer
	now      func() time.Time
	logger   *observability.Logger
}

// NewPublisher creates a new event publisher; producer may be nil
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		now:      time.Now,
		logger:   logger,
	}
}

// PublishSwipeRecorded publishes a swipe.recorded event keyed by campaign
func (p *Publisher) PublishSwipeRecorded(ctx context.Context, swipe store.SwipeRecord) error {
	return p.publish(ctx, EventSwipeRecorded, swipe.CampaignID, map[string]interface{}{
		"swipe_id":      swipe.ID.String(),
		"influencer_id": swipe.InfluencerID.String(),
		"campaign_id":   swipe.CampaignID.String(),
		"action":        swipe.Action,
		"match_score":   swipe.MatchScore,
		"swiped_at":     swipe.SwipedAt.UTC().Format(time.RFC3339),
	})
}

// PublishMatchCreated publishes a match.created event keyed by campaign
func (p *Publisher) PublishMatchCreated(ctx context.Context, match store.Match, advertiserID uuid.UUID) error {
	data := map[string]interface{}{
		"match_id":      match.ID.String(),
		"campaign_id":   match.CampaignID.String(),
		"influencer_id": match.InfluencerID.String(),
		"advertiser_id": advertiserID.String(),
		"action":        match.Action,
		"match_score":   match.MatchScore,
	}
	if price, ok := match.Metadata["predicted_price"]; ok {
		data["predicted_price"] = price
	}
	return p.publish(ctx, EventMatchCreated, match.CampaignID, data)
}

func (p *Publisher) publish(ctx context.Context, eventType string, campaignID uuid.UUID, data map[string]interface{}) error {
	if p == nil || p.producer == nil {
		return nil
	}

	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		Key:       campaignID.String(),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	})
}
