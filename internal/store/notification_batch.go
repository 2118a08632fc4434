package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BatchStageOffsets are the digest sends scheduled for every new batch
var BatchStageOffsets = []struct {
	Stage  string
	Offset time.Duration
}{
	{BatchStage30m, 30 * time.Minute},
	{BatchStage2h, 2 * time.Hour},
	{BatchStage24h, 24 * time.Hour},
}

// AppendApplicantParams represents parameters for adding an applicant to a batch
type AppendApplicantParams struct {
	CampaignID   uuid.UUID
	AdvertiserID uuid.UUID
	Applicant    Applicant
	Now          time.Time
}

const notificationBatchColumns = `id, campaign_id, advertiser_id, applicants, status, scheduled_for, created_at, updated_at`

// xmax = 0 only for a freshly inserted row, which tells a new batch from an append
const sqlUpsertNotificationBatch = `
INSERT INTO notification_batches (campaign_id, advertiser_id, applicants, status, scheduled_for, created_at, updated_at)
VALUES ($1, $2, $3, 'pending', $4, $5, $5)
ON CONFLICT (campaign_id, advertiser_id) WHERE status <> 'completed'
DO UPDATE SET applicants = notification_batches.applicants || EXCLUDED.applicants,
	updated_at = EXCLUDED.updated_at
RETURNING ` + notificationBatchColumns + `, (xmax = 0) AS inserted`

const sqlCreateNotificationBatchJob = `
INSERT INTO notification_batch_jobs (batch_id, stage, send_at, status)
VALUES ($1, $2, $3, 'pending')
ON CONFLICT (batch_id, stage) DO NOTHING`

// AppendApplicantToBatch adds the applicant to the open batch for the campaign,
// opening one with its three scheduled sends when none exists.
func (s *Store) AppendApplicantToBatch(ctx context.Context, params AppendApplicantParams) (NotificationBatch, bool, error) {
	var row struct {
		NotificationBatch
		Inserted bool `db:"inserted"`
	}
	firstSend := params.Now.Add(BatchStageOffsets[0].Offset)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &row, sqlUpsertNotificationBatch,
			params.CampaignID,
			params.AdvertiserID,
			Applicants{params.Applicant},
			firstSend,
			params.Now); err != nil {
			return fmt.Errorf("failed to upsert notification batch: %w", err)
		}
		if !row.Inserted {
			return nil
		}
		for _, stage := range BatchStageOffsets {
			if _, err := tx.ExecContext(ctx, sqlCreateNotificationBatchJob,
				row.ID, stage.Stage, params.Now.Add(stage.Offset)); err != nil {
				return fmt.Errorf("failed to schedule %s digest: %w", stage.Stage, err)
			}
		}
		return nil
	})
	if err != nil {
		return NotificationBatch{}, false, err
	}
	return row.NotificationBatch, row.Inserted, nil
}

const sqlSelectNotificationBatchByID = `
SELECT ` + notificationBatchColumns + `
FROM notification_batches
WHERE id = $1`

// GetNotificationBatchByID retrieves a batch by ID
func (s *Store) GetNotificationBatchByID(ctx context.Context, batchID uuid.UUID) (NotificationBatch, error) {
	var batch NotificationBatch
	err := s.db.GetContext(ctx, &batch, sqlSelectNotificationBatchByID, batchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotificationBatch{}, ErrNotFound
		}
		return NotificationBatch{}, fmt.Errorf("failed to get notification batch by id: %w", err)
	}
	return batch, nil
}

const batchJobColumns = `id, batch_id, stage, send_at, status, attempts, last_error, locked_at, created_at, updated_at`

const sqlClaimDueBatchJobs = `
UPDATE notification_batch_jobs
SET status = 'processing', locked_at = $1, attempts = attempts + 1, updated_at = $1
WHERE id IN (
	SELECT id FROM notification_batch_jobs
	WHERE status = 'pending' AND send_at <= $1
	ORDER BY send_at
	LIMIT $2
	FOR UPDATE SKIP LOCKED
)
RETURNING ` + batchJobColumns

// ClaimDueBatchJobs moves up to limit due jobs to processing and returns them.
// Concurrent claimers never receive the same job.
func (s *Store) ClaimDueBatchJobs(ctx context.Context, now time.Time, limit int) ([]NotificationBatchJob, error) {
	jobs := []NotificationBatchJob{}
	if err := s.db.SelectContext(ctx, &jobs, sqlClaimDueBatchJobs, now, limit); err != nil {
		return nil, fmt.Errorf("failed to claim due batch jobs: %w", err)
	}
	return jobs, nil
}

const sqlCompleteBatchJob = `
UPDATE notification_batch_jobs
SET status = 'done', last_error = NULL, updated_at = $2
WHERE id = $1`

// Never move a completed batch back to partial if a late job finishes after the 24h send
const sqlSetBatchStatus = `
UPDATE notification_batches
SET status = $2, updated_at = $3
WHERE id = $1 AND status <> 'completed'`

// CompleteBatchJob marks the job done and moves the batch to batchStatus
func (s *Store) CompleteBatchJob(ctx context.Context, job NotificationBatchJob, batchStatus string, now time.Time) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlCompleteBatchJob, job.ID, now); err != nil {
			return fmt.Errorf("failed to complete batch job: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlSetBatchStatus, job.BatchID, batchStatus, now); err != nil {
			return fmt.Errorf("failed to update batch status: %w", err)
		}
		return nil
	})
}

const sqlFailBatchJob = `
UPDATE notification_batch_jobs
SET status = CASE WHEN attempts >= $3 THEN 'failed' ELSE 'pending' END,
    last_error = $2,
    locked_at = NULL,
    updated_at = NOW()
WHERE id = $1`

// A batch whose 24h send has given up must close, or the open-batch index
// keeps folding new applicants into a batch with nothing left to send them.
const sqlCloseAbandonedBatches = `
UPDATE notification_batches b
SET status = 'completed', updated_at = NOW()
WHERE b.status <> 'completed'
  AND EXISTS (
	SELECT 1 FROM notification_batch_jobs j
	WHERE j.batch_id = b.id AND j.stage = '24h' AND j.status = 'failed'
  )`

// FailBatchJob returns the job to pending for retry, or marks it failed once
// maxAttempts is reached. A failed 24h job closes its batch.
func (s *Store) FailBatchJob(ctx context.Context, jobID uuid.UUID, reason string, maxAttempts int) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlFailBatchJob, jobID, reason, maxAttempts); err != nil {
			return fmt.Errorf("failed to record batch job failure: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlCloseAbandonedBatches); err != nil {
			return fmt.Errorf("failed to close abandoned batches: %w", err)
		}
		return nil
	})
}

const sqlReleaseStaleBatchJobs = `
UPDATE notification_batch_jobs
SET status = CASE WHEN attempts >= $2 THEN 'failed' ELSE 'pending' END,
    last_error = COALESCE(last_error, 'released after processing timeout'),
    locked_at = NULL,
    updated_at = NOW()
WHERE status = 'processing' AND locked_at < $1`

// ReleaseStaleBatchJobs puts back jobs whose worker died while processing them
func (s *Store) ReleaseStaleBatchJobs(ctx context.Context, lockedBefore time.Time, maxAttempts int) (int64, error) {
	var released int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlReleaseStaleBatchJobs, lockedBefore, maxAttempts)
		if err != nil {
			return fmt.Errorf("failed to release stale batch jobs: %w", err)
		}
		if released, err = res.RowsAffected(); err != nil {
			return err
		}
		if released == 0 {
			return nil
		}
		if _, err := tx.ExecContext(ctx, sqlCloseAbandonedBatches); err != nil {
			return fmt.Errorf("failed to close abandoned batches: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}
