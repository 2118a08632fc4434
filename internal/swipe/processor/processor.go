package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"time"

	"github.com/google/uuid"
)

// SwipeStore defines the database operations required by SwipeProcessor
type SwipeStore interface {
	GetInfluencerByID(ctx context.Context, influencerID uuid.UUID) (store.Influencer, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListPreferredCampaigns(ctx context.Context, influencerID uuid.UUID, categories []string, limit int) ([]store.Campaign, error)
	ListGeneralCampaigns(ctx context.Context, influencerID uuid.UUID, excludeIDs []uuid.UUID, limit int) ([]store.Campaign, error)
	GetSwipe(ctx context.Context, influencerID, campaignID uuid.UUID) (store.SwipeRecord, error)
	CreateSwipe(ctx context.Context, params store.CreateSwipeParams) (store.SwipeRecord, int, error)
	CreateMatch(ctx context.Context, params store.CreateMatchParams) (store.Match, error)
	GetMatchByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (store.Match, error)
	MarkMatchNotified(ctx context.Context, matchID uuid.UUID, at time.Time) error
	EnsureChatRoom(ctx context.Context, params store.EnsureChatRoomParams) (store.ChatRoom, bool, error)
}

// Notifier sends an immediate notification to a user
type Notifier interface {
	Notify(ctx context.Context, params store.CreateNotificationParams) (store.Notification, error)
}

// ApplicantBatcher queues a like into the advertiser's digest
type ApplicantBatcher interface {
	ScheduleApplicantNotification(ctx context.Context, campaignID uuid.UUID, advertiserID uuid.UUID, applicant store.Applicant) error
}

// EventPublisher emits swipe domain events
type EventPublisher interface {
	PublishSwipeRecorded(ctx context.Context, swipe store.SwipeRecord) error
	PublishMatchCreated(ctx context.Context, match store.Match, advertiserID uuid.UUID) error
}

var (
	ErrInfluencerNotFound = errors.New("influencer not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignNotActive  = errors.New("campaign is not active")
	ErrInvalidAction      = errors.New("invalid swipe action")
	ErrSwipeLimitReached  = errors.New("daily swipe limit reached")
	ErrFailedGetLimit     = errors.New("failed to get swipe limit")
	ErrFailedGetQueue     = errors.New("failed to generate swipe queue")
	ErrFailedRecordSwipe  = errors.New("failed to record swipe")
)

// Config is the swipe policy
type Config struct {
	DailyLimit int
	Location   *time.Location
}

type SwipeProcessor struct {
	store      SwipeStore
	notifier   Notifier
	batcher    ApplicantBatcher
	publisher  EventPublisher
	dailyLimit int
	location   *time.Location
	now        func() time.Time
	logger     *observability.Logger
}

func New(store SwipeStore, notifier Notifier, batcher ApplicantBatcher, publisher EventPublisher, cfg Config, logger *observability.Logger) SwipeProcessor {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return SwipeProcessor{
		store:      store,
		notifier:   notifier,
		batcher:    batcher,
		publisher:  publisher,
		dailyLimit: cfg.DailyLimit,
		location:   loc,
		now:        time.Now,
		logger:     logger,
	}
}

func (p *SwipeProcessor) getInfluencer(ctx context.Context, influencerID uuid.UUID, failErr error) (store.Influencer, error) {
	influencer, err := p.store.GetInfluencerByID(ctx, influencerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Influencer{}, ErrInfluencerNotFound
		}
		p.logger.Error(ctx, "failed to get influencer", err)
		return store.Influencer{}, failErr
	}
	return influencer, nil
}
