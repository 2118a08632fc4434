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

// EnsureChatRoomParams represents parameters for opening a chat room
type EnsureChatRoomParams struct {
	CampaignID     uuid.UUID
	AdvertiserID   uuid.UUID
	InfluencerID   uuid.UUID
	WelcomeMessage string
	CreatedAt      time.Time
}

const chatRoomColumns = `id, campaign_id, advertiser_id, influencer_id, last_message, last_message_at,
	unread_count_advertiser, unread_count_influencer, created_at, updated_at`

const sqlInsertChatRoom = `
INSERT INTO chat_rooms (campaign_id, advertiser_id, influencer_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (campaign_id, advertiser_id, influencer_id) DO NOTHING
RETURNING ` + chatRoomColumns

const sqlSelectChatRoomByParticipants = `
SELECT ` + chatRoomColumns + `
FROM chat_rooms
WHERE campaign_id = $1 AND advertiser_id = $2 AND influencer_id = $3`

const sqlInsertChatMessage = `
INSERT INTO messages (chat_room_id, sender_id, message_type, content, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, chat_room_id, sender_id, message_type, content, created_at`

const sqlSetChatRoomLastMessage = `
UPDATE chat_rooms
SET last_message = $2, last_message_at = $3, updated_at = $3
WHERE id = $1`

// EnsureChatRoom returns the room for the triple, creating it with a system
// welcome message if it does not exist yet. created reports whether this call made it.
func (s *Store) EnsureChatRoom(ctx context.Context, params EnsureChatRoomParams) (ChatRoom, bool, error) {
	var room ChatRoom
	created := false
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &room, sqlInsertChatRoom,
			params.CampaignID, params.AdvertiserID, params.InfluencerID, params.CreatedAt)
		if err == nil {
			created = true
			if params.WelcomeMessage == "" {
				return nil
			}
			if _, err := tx.ExecContext(ctx, sqlInsertChatMessage,
				room.ID, nil, MessageTypeSystem, params.WelcomeMessage, params.CreatedAt); err != nil {
				return fmt.Errorf("failed to seed welcome message: %w", err)
			}
			if _, err := tx.ExecContext(ctx, sqlSetChatRoomLastMessage,
				room.ID, params.WelcomeMessage, params.CreatedAt); err != nil {
				return fmt.Errorf("failed to set last message: %w", err)
			}
			room.LastMessage = &params.WelcomeMessage
			room.LastMessageAt = &params.CreatedAt
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to insert chat room: %w", err)
		}
		// Conflict: the room already exists
		if err := tx.GetContext(ctx, &room, sqlSelectChatRoomByParticipants,
			params.CampaignID, params.AdvertiserID, params.InfluencerID); err != nil {
			return fmt.Errorf("failed to get existing chat room: %w", err)
		}
		return nil
	})
	if err != nil {
		return ChatRoom{}, false, err
	}
	return room, created, nil
}

const sqlSelectChatRoomByID = `
SELECT ` + chatRoomColumns + `
FROM chat_rooms
WHERE id = $1`

// GetChatRoomByID retrieves a chat room by ID
func (s *Store) GetChatRoomByID(ctx context.Context, roomID uuid.UUID) (ChatRoom, error) {
	var room ChatRoom
	err := s.db.GetContext(ctx, &room, sqlSelectChatRoomByID, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ChatRoom{}, ErrNotFound
		}
		return ChatRoom{}, fmt.Errorf("failed to get chat room by id: %w", err)
	}
	return room, nil
}

const sqlSelectChatRoomsByUser = `
SELECT ` + chatRoomColumns + `
FROM chat_rooms
WHERE advertiser_id = $1 OR influencer_id = $1
ORDER BY last_message_at DESC NULLS LAST, created_at DESC`

// ListChatRoomsByUser lists rooms the user participates in, most recent activity first
func (s *Store) ListChatRoomsByUser(ctx context.Context, userID uuid.UUID) ([]ChatRoom, error) {
	rooms := []ChatRoom{}
	err := s.db.SelectContext(ctx, &rooms, sqlSelectChatRoomsByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat rooms: %w", err)
	}
	return rooms, nil
}

const sqlSelectChatMessages = `
SELECT id, chat_room_id, sender_id, message_type, content, created_at
FROM messages
WHERE chat_room_id = $1
ORDER BY created_at ASC, id
LIMIT $2 OFFSET $3`

// ListChatMessages lists messages oldest first
func (s *Store) ListChatMessages(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]ChatMessage, error) {
	messages := []ChatMessage{}
	err := s.db.SelectContext(ctx, &messages, sqlSelectChatMessages, roomID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

// SendChatMessageParams represents parameters for posting a message
type SendChatMessageParams struct {
	RoomID   uuid.UUID
	SenderID uuid.UUID
	Content  string
	// SenderIsAdvertiser selects which side's unread counter is bumped
	SenderIsAdvertiser bool
	SentAt             time.Time
}

const sqlBumpChatRoomForAdvertiserSender = `
UPDATE chat_rooms
SET last_message = $2, last_message_at = $3, updated_at = $3,
    unread_count_influencer = unread_count_influencer + 1
WHERE id = $1`

const sqlBumpChatRoomForInfluencerSender = `
UPDATE chat_rooms
SET last_message = $2, last_message_at = $3, updated_at = $3,
    unread_count_advertiser = unread_count_advertiser + 1
WHERE id = $1`

// SendChatMessage stores a message and updates the room summary in one transaction
func (s *Store) SendChatMessage(ctx context.Context, params SendChatMessageParams) (ChatMessage, error) {
	var message ChatMessage
	bump := sqlBumpChatRoomForInfluencerSender
	if params.SenderIsAdvertiser {
		bump = sqlBumpChatRoomForAdvertiserSender
	}
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &message, sqlInsertChatMessage,
			params.RoomID, params.SenderID, MessageTypeText, params.Content, params.SentAt); err != nil {
			return fmt.Errorf("failed to insert chat message: %w", err)
		}
		if _, err := tx.ExecContext(ctx, bump, params.RoomID, params.Content, params.SentAt); err != nil {
			return fmt.Errorf("failed to update chat room: %w", err)
		}
		return nil
	})
	if err != nil {
		return ChatMessage{}, err
	}
	return message, nil
}

const sqlMarkChatRoomReadAdvertiser = `
UPDATE chat_rooms SET unread_count_advertiser = 0 WHERE id = $1`

const sqlMarkChatRoomReadInfluencer = `
UPDATE chat_rooms SET unread_count_influencer = 0 WHERE id = $1`

// MarkChatRoomRead clears the reader's unread counter
func (s *Store) MarkChatRoomRead(ctx context.Context, roomID uuid.UUID, readerIsAdvertiser bool) error {
	query := sqlMarkChatRoomReadInfluencer
	if readerIsAdvertiser {
		query = sqlMarkChatRoomReadAdvertiser
	}
	res, err := s.db.ExecContext(ctx, query, roomID)
	if err != nil {
		return fmt.Errorf("failed to mark chat room read: %w", err)
	}
	return expectOneRow(res)
}
