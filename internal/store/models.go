package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, err := scanBytes(value, "JSONB")
	if err != nil {
		return err
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format with quoted elements: {"item1","item2"}
	quoted := make([]string, len(a))
	for i, v := range a {
		quoted[i] = `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	// Remove curly braces and split
	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	parts := strings.Split(str, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(p, `"`)
	}
	*a = parts
	return nil
}

// UUIDArray converts ids into the text form accepted by a uuid[] parameter
func UUIDArray(ids []uuid.UUID) StringArray {
	arr := make(StringArray, len(ids))
	for i, id := range ids {
		arr[i] = id.String()
	}
	return arr
}

// Deliverable is one line of a campaign's content requirements, e.g. 3 reels
type Deliverable struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Deliverables is stored as a JSONB array
type Deliverables []Deliverable

// Value implements the driver.Valuer interface for Deliverables
func (d Deliverables) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface for Deliverables
func (d *Deliverables) Scan(value interface{}) error {
	return scanJSONArray(value, d, "Deliverables")
}

// TotalCount sums the count of every deliverable
func (d Deliverables) TotalCount() int {
	total := 0
	for _, item := range d {
		total += item.Count
	}
	return total
}

// Applicant is a positive swipe waiting in a notification batch
type Applicant struct {
	InfluencerID uuid.UUID `json:"influencer_id"`
	MatchID      uuid.UUID `json:"match_id"`
	Action       string    `json:"action"`
	MatchScore   int       `json:"match_score"`
	AppliedAt    time.Time `json:"applied_at"`
}

// Applicants is stored as a JSONB array and appended to with ||
type Applicants []Applicant

// Value implements the driver.Valuer interface for Applicants
func (a Applicants) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for Applicants
func (a *Applicants) Scan(value interface{}) error {
	return scanJSONArray(value, a, "Applicants")
}

func scanBytes(value interface{}, name string) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("incompatible type for " + name)
	}
}

func scanJSONArray(value interface{}, dest interface{}, name string) error {
	if value == nil {
		return nil
	}
	bytes, err := scanBytes(value, name)
	if err != nil {
		return err
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// ============================================================================
// Accounts
// ============================================================================

// User is the shared identity row. Influencer and Advertiser profiles reuse its id.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	UserType  string    `db:"user_type" json:"user_type"`
	Name      *string   `db:"name" json:"name,omitempty"`
	AvatarURL *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Influencer is a creator profile with the swipe counter
type Influencer struct {
	ID               uuid.UUID   `db:"id" json:"id"`
	InstagramHandle  *string     `db:"instagram_handle" json:"instagram_handle,omitempty"`
	FollowersCount   int         `db:"followers_count" json:"followers_count"`
	EngagementRate   float64     `db:"engagement_rate" json:"engagement_rate"`
	Categories       StringArray `db:"categories" json:"categories"`
	Tier             string      `db:"tier" json:"tier"`
	IsVerified       bool        `db:"is_verified" json:"is_verified"`
	DailySwipesCount int         `db:"daily_swipes_count" json:"daily_swipes_count"`
	LastSwipeDate    *time.Time  `db:"last_swipe_date" json:"last_swipe_date,omitempty"`
	LastSwipeAt      *time.Time  `db:"last_swipe_at" json:"last_swipe_at,omitempty"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`
}

// Advertiser is a brand profile that owns campaigns
type Advertiser struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CompanyName string    `db:"company_name" json:"company_name"`
	IsVerified  bool      `db:"is_verified" json:"is_verified"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Campaigns and swipes
// ============================================================================

// Campaign is an advertiser's offer shown in the swipe queue
type Campaign struct {
	ID                uuid.UUID    `db:"id" json:"id"`
	AdvertiserID      uuid.UUID    `db:"advertiser_id" json:"advertiser_id"`
	Title             string       `db:"title" json:"title"`
	Description       *string      `db:"description" json:"description,omitempty"`
	Categories        StringArray  `db:"categories" json:"categories"`
	Budget            int64        `db:"budget" json:"budget"`
	MinFollowers      int          `db:"min_followers" json:"min_followers"`
	MinEngagementRate float64      `db:"min_engagement_rate" json:"min_engagement_rate"`
	Deliverables      Deliverables `db:"deliverables" json:"deliverables"`
	Status            string       `db:"status" json:"status"`
	IsPremium         bool         `db:"is_premium" json:"is_premium"`
	Urgency           string       `db:"urgency" json:"urgency"`
	ViewCount         int          `db:"view_count" json:"view_count"`
	LikeCount         int          `db:"like_count" json:"like_count"`
	SuperLikeCount    int          `db:"super_like_count" json:"super_like_count"`
	ApplicationCount  int          `db:"application_count" json:"application_count"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at" json:"updated_at"`
}

// SwipeRecord is one influencer decision on one campaign
type SwipeRecord struct {
	ID           uuid.UUID `db:"id" json:"id"`
	InfluencerID uuid.UUID `db:"influencer_id" json:"influencer_id"`
	CampaignID   uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Action       string    `db:"action" json:"action"`
	MatchScore   int       `db:"match_score" json:"match_score"`
	SwipedAt     time.Time `db:"swiped_at" json:"swiped_at"`
}

// Match is a campaign_influencers row created by a positive swipe
type Match struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	CampaignID   uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	InfluencerID uuid.UUID  `db:"influencer_id" json:"influencer_id"`
	Status       string     `db:"status" json:"status"`
	Action       string     `db:"action" json:"action"`
	MatchScore   int        `db:"match_score" json:"match_score"`
	AgreedPrice  *int64     `db:"agreed_price" json:"agreed_price,omitempty"`
	Metadata     JSONB      `db:"metadata" json:"metadata"`
	NotifiedAt   *time.Time `db:"notified_at" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Chat
// ============================================================================

// ChatRoom exists once per (campaign, advertiser, influencer)
type ChatRoom struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	CampaignID            uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	AdvertiserID          uuid.UUID  `db:"advertiser_id" json:"advertiser_id"`
	InfluencerID          uuid.UUID  `db:"influencer_id" json:"influencer_id"`
	LastMessage           *string    `db:"last_message" json:"last_message,omitempty"`
	LastMessageAt         *time.Time `db:"last_message_at" json:"last_message_at,omitempty"`
	UnreadCountAdvertiser int        `db:"unread_count_advertiser" json:"unread_count_advertiser"`
	UnreadCountInfluencer int        `db:"unread_count_influencer" json:"unread_count_influencer"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}

// ChatMessage is a message in a room; SenderID is nil for system messages
type ChatMessage struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ChatRoomID  uuid.UUID  `db:"chat_room_id" json:"chat_room_id"`
	SenderID    *uuid.UUID `db:"sender_id" json:"sender_id,omitempty"`
	MessageType string     `db:"message_type" json:"message_type"`
	Content     string     `db:"content" json:"content"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// ============================================================================
// Notifications
// ============================================================================

// Notification is an in-app notification; push delivery fans out from it
type Notification struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Type      string     `db:"type" json:"type"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	Metadata  JSONB      `db:"metadata" json:"metadata"`
	Priority  string     `db:"priority" json:"priority"`
	IsRead    bool       `db:"is_read" json:"is_read"`
	ReadAt    *time.Time `db:"read_at" json:"read_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// NotificationBatch aggregates applicants of one campaign for digest sends
type NotificationBatch struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	CampaignID   uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	AdvertiserID uuid.UUID  `db:"advertiser_id" json:"advertiser_id"`
	Applicants   Applicants `db:"applicants" json:"applicants"`
	Status       string     `db:"status" json:"status"`
	ScheduledFor time.Time  `db:"scheduled_for" json:"scheduled_for"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// NotificationBatchJob is one durable scheduled digest send
type NotificationBatchJob struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	BatchID   uuid.UUID  `db:"batch_id" json:"batch_id"`
	Stage     string     `db:"stage" json:"stage"`
	SendAt    time.Time  `db:"send_at" json:"send_at"`
	Status    string     `db:"status" json:"status"`
	Attempts  int        `db:"attempts" json:"attempts"`
	LastError *string    `db:"last_error" json:"last_error,omitempty"`
	LockedAt  *time.Time `db:"locked_at" json:"locked_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// PushSubscription is a browser Web Push endpoint registered by a user
type PushSubscription struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Endpoint   string    `db:"endpoint" json:"endpoint"`
	P256dh     string    `db:"p256dh" json:"p256dh"`
	Auth       string    `db:"auth" json:"auth"`
	DeviceType *string   `db:"device_type" json:"device_type,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Waitlist
// ============================================================================

// WaitlistEntry is a pre-launch signup
type WaitlistEntry struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	UserType        string    `db:"user_type" json:"user_type"`
	Name            *string   `db:"name" json:"name,omitempty"`
	InstagramHandle *string   `db:"instagram_handle" json:"instagram_handle,omitempty"`
	CompanyName     *string   `db:"company_name" json:"company_name,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
