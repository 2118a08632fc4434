package store

// User ENUMs
const (
	UserTypeInfluencer = "influencer"
	UserTypeAdvertiser = "advertiser"
	UserTypeAdmin      = "admin"
)

// Influencer tier ENUMs
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Swipe ENUMs
const (
	SwipeActionLike      = "like"
	SwipeActionPass      = "pass"
	SwipeActionSuperLike = "super_like"
)

// IsPositiveSwipe reports whether the action creates a match
func IsPositiveSwipe(action string) bool {
	return action == SwipeActionLike || action == SwipeActionSuperLike
}

// Match ENUMs
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

// Chat ENUMs
const (
	MessageTypeText   = "text"
	MessageTypeSystem = "system"
)

// Notification ENUMs
const (
	NotificationTypeSuperLike      = "super_like"
	NotificationTypeApplicantBatch = "applicant_digest"
	NotificationTypeMatchAccepted  = "match_accepted"
	NotificationTypeMatchRejected  = "match_rejected"
	NotificationTypeNewMessage     = "new_message"
)

const (
	NotificationPriorityLow    = "low"
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
)

const (
	NotificationEventDismissed = "dismissed"
)

// Notification batch ENUMs
const (
	BatchStatusPending   = "pending"
	BatchStatusPartial   = "partial"
	BatchStatusCompleted = "completed"
)

const (
	BatchStage30m = "30m"
	BatchStage2h  = "2h"
	BatchStage24h = "24h"
)

const (
	BatchJobStatusPending    = "pending"
	BatchJobStatusProcessing = "processing"
	BatchJobStatusDone       = "done"
	BatchJobStatusFailed     = "failed"
)
