package jobs

import (
	"context"
	"fmt"
	"time"

	"itda-server/internal/observability"
)

// DigestProcessor sends applicant digests that have come due
type DigestProcessor interface {
	ProcessDueDigests(ctx context.Context) (int, error)
}

// DigestJob polls for due applicant digest sends
type DigestJob struct {
	processor DigestProcessor
	interval  time.Duration
	logger    *observability.Logger
}

// NewDigestJob creates a new digest job
func NewDigestJob(processor DigestProcessor, interval time.Duration, logger *observability.Logger) *DigestJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DigestJob{
		processor: processor,
		interval:  interval,
		logger:    logger,
	}
}

// Name returns the job name
func (j *DigestJob) Name() string {
	return "applicant_digest"
}

// Schedule returns how often the job runs
func (j *DigestJob) Schedule() time.Duration {
	return j.interval
}

// Run sends every due digest
func (j *DigestJob) Run(ctx context.Context) error {
	sent, err := j.processor.ProcessDueDigests(ctx)
	if err != nil {
		return fmt.Errorf("failed to process due digests: %w", err)
	}
	if sent > 0 {
		j.logger.Info(ctx, fmt.Sprintf("sent %d applicant digests", sent))
	}
	return nil
}
