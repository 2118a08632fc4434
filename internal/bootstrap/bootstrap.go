package bootstrap

import (
	"context"
	"fmt"
	apisetup "itda-server/internal/api"
	"itda-server/internal/config"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"time"

	authHandler "itda-server/internal/auth/handler"
	authProcessor "itda-server/internal/auth/processor"
	chatHandler "itda-server/internal/chat/handler"
	chatProcessor "itda-server/internal/chat/processor"
	kafkaClient "itda-server/internal/clients/kafka"
	redisClient "itda-server/internal/clients/redis"
	"itda-server/internal/events"
	insightsHandler "itda-server/internal/insights/handler"
	insightsProcessor "itda-server/internal/insights/processor"
	"itda-server/internal/jobs"
	"itda-server/internal/jobs/scheduler"
	schedulerJobs "itda-server/internal/jobs/scheduler/jobs"
	matchesHandler "itda-server/internal/matches/handler"
	matchesProcessor "itda-server/internal/matches/processor"
	notificationsHandler "itda-server/internal/notifications/handler"
	notificationsProcessor "itda-server/internal/notifications/processor"
	"itda-server/internal/pkg/distlock"
	"itda-server/internal/ratelimit"
	swipeHandler "itda-server/internal/swipe/handler"
	swipeProcessor "itda-server/internal/swipe/processor"
	waitlistHandler "itda-server/internal/waitlist/handler"
	waitlistProcessor "itda-server/internal/waitlist/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler          authHandler.Handler
	SwipeHandler         swipeHandler.Handler
	InsightsHandler      insightsHandler.Handler
	MatchesHandler       matchesHandler.Handler
	ChatHandler          chatHandler.Handler
	NotificationsHandler notificationsHandler.Handler
	WaitlistHandler      waitlistHandler.Handler
	Limits               apisetup.Limits

	// Background workers
	Scheduler *scheduler.Scheduler

	// Clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	JobClient     *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Redis backs the job queue and scheduler locks
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	var pusher notificationsProcessor.PushEnqueuer
	if deps.RedisClient.IsEnabled() {
		deps.JobClient = jobs.NewClient(cfg.Redis, logger)
		pusher = deps.JobClient
	} else {
		logger.Warn(ctx, "Redis disabled, notifications will not be pushed")
	}

	// Domain events go to Kafka when brokers are configured
	var eventProducer events.EventProducer
	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		eventProducer = deps.KafkaProducer
	}
	publisher := events.NewPublisher(eventProducer, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, authProcessor.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		Audience:  cfg.Auth.Audience,
	}, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize notifications processor and handler
	notificationProc := notificationsProcessor.New(&deps.Store, pusher, notificationsProcessor.Config{
		BatchSize: cfg.Digest.BatchSize,
	}, logger)
	deps.NotificationsHandler = notificationsHandler.New(notificationProc, logger)

	// Initialize swipe processor and handler
	swipeProc := swipeProcessor.New(&deps.Store, &notificationProc, &notificationProc, publisher, swipeProcessor.Config{
		DailyLimit: cfg.Swipe.DailyLimit,
		Location:   cfg.Swipe.Location,
	}, logger)
	deps.SwipeHandler = swipeHandler.New(swipeProc, logger)

	// Initialize insights processor and handler
	insightsProc := insightsProcessor.New(&deps.Store, logger)
	deps.InsightsHandler = insightsHandler.New(insightsProc, logger)

	// Initialize matches processor and handler
	matchesProc := matchesProcessor.New(&deps.Store, &notificationProc, logger)
	deps.MatchesHandler = matchesHandler.New(matchesProc, logger)

	// Initialize chat processor and handler
	chatProc := chatProcessor.New(&deps.Store, &notificationProc, logger)
	deps.ChatHandler = chatHandler.New(chatProc, logger)

	// Initialize waitlist processor and handler
	waitlistProc := waitlistProcessor.New(&deps.Store, logger)
	deps.WaitlistHandler = waitlistHandler.New(waitlistProc, logger)

	// Rate limits are only enforced when Redis is available
	deps.Limits = apisetup.Limits{
		WaitlistSignup: ratelimit.NewLimiter(deps.RedisClient, "waitlist_signup", 5, time.Minute, logger),
		ChatSend:       ratelimit.NewLimiter(deps.RedisClient, "chat_send", 30, time.Minute, logger),
	}

	// Digest worker, one instance per tick across replicas
	lockFactory := distlock.NewFactory(deps.RedisClient.GetClient(), deps.Store.DB().DB)
	deps.Scheduler = scheduler.New(lockFactory, logger)
	deps.Scheduler.Register(schedulerJobs.NewDigestJob(&notificationProc, cfg.Digest.PollInterval, logger))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
