package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"itda-server/internal/clients/mail"
	"itda-server/internal/clients/webpush"
	"itda-server/internal/config"
	"itda-server/internal/jobs"
	"itda-server/internal/jobs/workers"
	"itda-server/internal/observability"
	"itda-server/internal/store"

	"github.com/hibiken/asynq"
)

// dailyResetCron fires at local midnight in the configured swipe timezone
const dailyResetCron = "0 0 * * *"

func main() {
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load config", err)
	}
	if !cfg.Redis.Enabled {
		logger.Fatal(ctx, "worker requires Redis", fmt.Errorf("REDIS_ENABLED is false"))
	}

	logger.Info(ctx, "Starting background worker server...")

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}
	defer dataStore.Close()

	// Optional delivery channels; the worker skips whichever is unconfigured
	var sender workers.PushSender
	if pushClient := webpush.NewClient(cfg.Push, logger); pushClient != nil {
		sender = pushClient
	}
	var mailer workers.Mailer
	if mailClient := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger); mailClient != nil {
		mailer = mailClient
	}

	pushWorker := workers.NewPushWorker(&dataStore, sender, mailer, cfg.Services.WebAppURI, logger)
	swipeResetWorker := workers.NewSwipeResetWorker(&dataStore, cfg.Swipe.Location, logger)

	redisOpt := jobs.RedisOpt(cfg.Redis)

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues:      jobs.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeNotificationPush, pushWorker.ProcessPushTask)
	mux.HandleFunc(jobs.TypeSwipeDailyReset, swipeResetWorker.ProcessSwipeResetTask)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: cfg.Swipe.Location,
		Logger:   &asynqLogger{logger: logger},
	})
	if _, err := scheduler.Register(dailyResetCron, jobs.NewSwipeDailyResetTask()); err != nil {
		logger.Fatal(ctx, "failed to register daily swipe reset", err)
	}
	if err := scheduler.Start(); err != nil {
		logger.Fatal(ctx, "failed to start scheduler", err)
	}
	defer scheduler.Shutdown()

	if err := srv.Start(mux); err != nil {
		logger.Fatal(ctx, "failed to start worker server", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info(ctx, "Shutting down worker server...")
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
