package scheduler

import (
	"context"
	"errors"
	"fmt"
	"itda-server/internal/observability"
	"itda-server/internal/pkg/distlock"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging and the lock key
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler manages scheduled jobs. When a lock factory is set, each run
// first takes a lock named after the job so only one instance executes it.
type Scheduler struct {
	jobs    []Job
	newLock distlock.Factory
	logger  *observability.Logger
}

// New creates a new scheduler. newLock may be nil for single-instance setups.
func New(newLock distlock.Factory, logger *observability.Logger) *Scheduler {
	return &Scheduler{
		jobs:    make([]Job, 0),
		newLock: newLock,
		logger:  logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start runs all scheduled jobs until ctx is cancelled, then waits for
// in-flight runs to return.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info(context.Background(), "Scheduler stopped")
	return ctx.Err()
}

// runJob runs a single job on its schedule
func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	// Run immediately on startup
	s.tick(jobCtx, job)

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(jobCtx, fmt.Sprintf("Stopping scheduled job: %s", job.Name()))
			return
		case <-ticker.C:
			s.tick(jobCtx, job)
		}
	}
}

// tick runs the job once if this instance wins the lock
func (s *Scheduler) tick(ctx context.Context, job Job) {
	if s.newLock == nil {
		_ = s.executeJob(ctx, job)
		return
	}

	// the lock outlives a normal run; a crashed holder frees it after two intervals
	ttl := 2 * job.Schedule()
	lock := s.newLock("scheduler:"+job.Name(), ttl)
	acquired, err := lock.Acquire(ctx)
	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Failed to acquire lock for job %s", job.Name()), err)
		return
	}
	if !acquired {
		s.logger.Debug(ctx, fmt.Sprintf("Job %s is running elsewhere, skipping", job.Name()))
		return
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Error(ctx, fmt.Sprintf("Failed to release lock for job %s", job.Name()), err)
		}
	}()

	stop := s.keepAlive(ctx, job, lock, ttl)
	_ = s.executeJob(ctx, job)
	stop()
}

// keepAlive renews an expiring lock every third of its ttl until stop is
// called, so a run longer than the ttl keeps other instances out.
func (s *Scheduler) keepAlive(ctx context.Context, job Job, lock distlock.DistLock, ttl time.Duration) (stop func()) {
	ext, ok := lock.(distlock.Extender)
	if !ok || ttl <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(ttl / 3)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := ext.Extend(ctx, ttl)
				switch {
				case err == nil:
				case errors.Is(err, distlock.ErrLockNotHeld):
					s.logger.Warn(ctx, fmt.Sprintf("Lost lock for job %s while running", job.Name()))
					return
				case ctx.Err() == nil:
					s.logger.Error(ctx, fmt.Sprintf("Failed to extend lock for job %s", job.Name()), err)
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	start := time.Now()
	s.logger.Debug(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return err
	}

	s.logger.Debug(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	return nil
}
