package processor

import (
	"context"
	"fmt"
	"itda-server/internal/estimator"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"sort"

	"github.com/google/uuid"
)

// topApplicantsInDigest caps the ranked list carried in the notification metadata
const topApplicantsInDigest = 5

// RankedApplicant is an applicant re-scored at digest time
type RankedApplicant struct {
	InfluencerID   uuid.UUID `json:"influencer_id"`
	MatchID        uuid.UUID `json:"match_id"`
	Action         string    `json:"action"`
	MatchScore     int       `json:"match_score"`
	PredictedPrice int64     `json:"predicted_price"`
}

// ScheduleApplicantNotification adds a liking influencer to the campaign's open
// digest. The first applicant opens the batch and its three scheduled sends.
func (p *NotificationProcessor) ScheduleApplicantNotification(ctx context.Context, campaignID, advertiserID uuid.UUID, applicant store.Applicant) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "advertiser_id", Value: advertiserID.String()},
		observability.Field{Key: "influencer_id", Value: applicant.InfluencerID.String()},
	)

	now := p.now()
	if applicant.AppliedAt.IsZero() {
		applicant.AppliedAt = now
	}
	batch, created, err := p.store.AppendApplicantToBatch(ctx, store.AppendApplicantParams{
		CampaignID:   campaignID,
		AdvertiserID: advertiserID,
		Applicant:    applicant,
		Now:          now,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to append applicant to batch", err)
		return ErrFailedScheduleDigest
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "batch_id", Value: batch.ID.String()})
	if created {
		p.logger.Info(ctx, "opened applicant digest batch")
	} else {
		p.logger.Debug(ctx, "appended applicant to open digest batch")
	}
	return nil
}

// ProcessDueDigests sends every digest whose time has come and returns how many
// jobs were handled. Failed sends go back to the queue until maxDigestAttempts.
func (p *NotificationProcessor) ProcessDueDigests(ctx context.Context) (int, error) {
	now := p.now()

	released, err := p.store.ReleaseStaleBatchJobs(ctx, now.Add(-staleJobTimeout), maxDigestAttempts)
	if err != nil {
		p.logger.Error(ctx, "failed to release stale digest jobs", err)
		return 0, ErrFailedProcessDigests
	}
	if released > 0 {
		p.logger.Warn(ctx, fmt.Sprintf("released %d stale digest jobs", released))
	}

	jobs, err := p.store.ClaimDueBatchJobs(ctx, now, p.batchSize)
	if err != nil {
		p.logger.Error(ctx, "failed to claim digest jobs", err)
		return 0, ErrFailedProcessDigests
	}

	handled, failed := 0, 0
	for _, job := range jobs {
		jobCtx := observability.WithFields(ctx,
			observability.Field{Key: "batch_id", Value: job.BatchID.String()},
			observability.Field{Key: "batch_job_id", Value: job.ID.String()},
			observability.Field{Key: "stage", Value: job.Stage},
		)
		if err := p.sendDigest(jobCtx, job); err != nil {
			p.logger.Error(jobCtx, "failed to send digest", err)
			if failErr := p.store.FailBatchJob(jobCtx, job.ID, err.Error(), maxDigestAttempts); failErr != nil {
				p.logger.Error(jobCtx, "failed to mark digest job failed", failErr)
			}
			failed++
			continue
		}
		handled++
	}

	if len(jobs) > 0 || released > 0 {
		p.logger.Metrics(ctx,
			observability.MetricField{Key: "digest_jobs_claimed", Value: len(jobs)},
			observability.MetricField{Key: "digest_jobs_sent", Value: handled},
			observability.MetricField{Key: "digest_jobs_failed", Value: failed},
			observability.MetricField{Key: "digest_jobs_released", Value: released},
		)
	}
	return handled, nil
}

func (p *NotificationProcessor) sendDigest(ctx context.Context, job store.NotificationBatchJob) error {
	batch, err := p.store.GetNotificationBatchByID(ctx, job.BatchID)
	if err != nil {
		return fmt.Errorf("get batch: %w", err)
	}

	// a batch can be closed by an earlier stage retried late
	if batch.Status == store.BatchStatusCompleted {
		return p.store.CompleteBatchJob(ctx, job, store.BatchStatusCompleted, p.now())
	}

	campaign, err := p.store.GetCampaignByID(ctx, batch.CampaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}

	ranked, err := p.rankApplicants(ctx, campaign, batch.Applicants)
	if err != nil {
		return err
	}

	if len(ranked) > 0 {
		if _, err := p.Notify(ctx, digestNotification(batch, campaign, job.Stage, ranked)); err != nil {
			return err
		}
	}

	status := store.BatchStatusPartial
	if job.Stage == store.BatchStage24h {
		status = store.BatchStatusCompleted
	}
	if err := p.store.CompleteBatchJob(ctx, job, status, p.now()); err != nil {
		return fmt.Errorf("complete batch job: %w", err)
	}
	return nil
}

// rankApplicants re-scores applicants against current profiles, best first.
// An applicant whose profile is gone keeps the score stored at swipe time.
func (p *NotificationProcessor) rankApplicants(ctx context.Context, campaign store.Campaign, applicants store.Applicants) ([]RankedApplicant, error) {
	seen := make(map[uuid.UUID]bool, len(applicants))
	ids := make([]uuid.UUID, 0, len(applicants))
	for _, a := range applicants {
		if !seen[a.InfluencerID] {
			seen[a.InfluencerID] = true
			ids = append(ids, a.InfluencerID)
		}
	}

	influencers, err := p.store.GetInfluencersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get influencers: %w", err)
	}
	byID := make(map[uuid.UUID]store.Influencer, len(influencers))
	for _, inf := range influencers {
		byID[inf.ID] = inf
	}

	ranked := make([]RankedApplicant, 0, len(ids))
	added := make(map[uuid.UUID]bool, len(ids))
	for _, a := range applicants {
		if added[a.InfluencerID] {
			continue
		}
		added[a.InfluencerID] = true

		r := RankedApplicant{
			InfluencerID: a.InfluencerID,
			MatchID:      a.MatchID,
			Action:       a.Action,
			MatchScore:   a.MatchScore,
		}
		if inf, ok := byID[a.InfluencerID]; ok {
			r.MatchScore = estimator.Score(inf, campaign)
			r.PredictedPrice = estimator.PredictForMatch(inf, campaign).EstimatedPrice
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked, nil
}

func digestNotification(batch store.NotificationBatch, campaign store.Campaign, stage string, ranked []RankedApplicant) store.CreateNotificationParams {
	top := ranked[0]
	shown := ranked
	if len(shown) > topApplicantsInDigest {
		shown = shown[:topApplicantsInDigest]
	}
	applicants := make([]interface{}, len(shown))
	for i, r := range shown {
		applicants[i] = map[string]interface{}{
			"influencer_id":   r.InfluencerID.String(),
			"match_id":        r.MatchID.String(),
			"match_score":     r.MatchScore,
			"predicted_price": r.PredictedPrice,
		}
	}

	return store.CreateNotificationParams{
		UserID:   batch.AdvertiserID,
		Type:     store.NotificationTypeApplicantBatch,
		Title:    fmt.Sprintf("새로운 지원자 %d명", len(ranked)),
		Message:  fmt.Sprintf("%s 캠페인에 %d명의 인플루언서가 관심을 보였습니다. 최고 매칭 점수는 %d점입니다.", campaign.Title, len(ranked), top.MatchScore),
		Priority: store.NotificationPriorityNormal,
		Metadata: store.JSONB{
			"batch_id":          batch.ID.String(),
			"campaign_id":       campaign.ID.String(),
			"stage":             stage,
			"applicant_count":   len(ranked),
			"top_influencer_id": top.InfluencerID.String(),
			"top_match_score":   top.MatchScore,
			"applicants":        applicants,
		},
	}
}

