package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ChatStore interface {
	GetChatRoomByID(ctx context.Context, roomID uuid.UUID) (store.ChatRoom, error)
	ListChatRoomsByUser(ctx context.Context, userID uuid.UUID) ([]store.ChatRoom, error)
	ListChatMessages(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]store.ChatMessage, error)
	SendChatMessage(ctx context.Context, params store.SendChatMessageParams) (store.ChatMessage, error)
	MarkChatRoomRead(ctx context.Context, roomID uuid.UUID, readerIsAdvertiser bool) error
}

// Notifier delivers the in-app notification for a new message
type Notifier interface {
	Notify(ctx context.Context, params store.CreateNotificationParams) (store.Notification, error)
}

var (
	ErrRoomNotFound    = errors.New("chat room not found")
	ErrNotParticipant  = errors.New("user is not a participant of this chat room")
	ErrEmptyMessage    = errors.New("message content is empty")
	ErrMessageTooLong  = errors.New("message content is too long")
	ErrFailedListRooms = errors.New("failed to list chat rooms")
	ErrFailedListMsgs  = errors.New("failed to list chat messages")
	ErrFailedSend      = errors.New("failed to send chat message")
	ErrFailedMarkRead  = errors.New("failed to mark chat room read")
	ErrFailedGetRoom   = errors.New("failed to get chat room")
)

const (
	maxMessageLength = 2000
	previewLength    = 50
)

type ChatProcessor struct {
	store    ChatStore
	notifier Notifier
	now      func() time.Time
	logger   *observability.Logger
}

func New(store ChatStore, notifier Notifier, logger *observability.Logger) ChatProcessor {
	return ChatProcessor{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// ListRooms returns the rooms the user takes part in, most recent activity first
func (p *ChatProcessor) ListRooms(ctx context.Context, userID uuid.UUID) ([]store.ChatRoom, error) {
	rooms, err := p.store.ListChatRoomsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()}),
			"failed to list chat rooms", err)
		return nil, ErrFailedListRooms
	}
	return rooms, nil
}

// ListMessages returns a page of the room's messages, oldest first
func (p *ChatProcessor) ListMessages(ctx context.Context, userID, roomID uuid.UUID, page, limit int) ([]store.ChatMessage, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "room_id", Value: roomID.String()},
	)

	if _, err := p.participantRoom(ctx, userID, roomID); err != nil {
		return nil, err
	}

	messages, err := p.store.ListChatMessages(ctx, roomID, limit, (page-1)*limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list chat messages", err)
		return nil, ErrFailedListMsgs
	}
	return messages, nil
}

// SendMessage posts a text message and notifies the other participant
func (p *ChatProcessor) SendMessage(ctx context.Context, userID, roomID uuid.UUID, content string) (store.ChatMessage, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "room_id", Value: roomID.String()},
	)

	content = strings.TrimSpace(content)
	if content == "" {
		return store.ChatMessage{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxMessageLength {
		return store.ChatMessage{}, ErrMessageTooLong
	}

	room, err := p.participantRoom(ctx, userID, roomID)
	if err != nil {
		return store.ChatMessage{}, err
	}

	senderIsAdvertiser := room.AdvertiserID == userID
	message, err := p.store.SendChatMessage(ctx, store.SendChatMessageParams{
		RoomID:             roomID,
		SenderID:           userID,
		Content:            content,
		SenderIsAdvertiser: senderIsAdvertiser,
		SentAt:             p.now(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to send chat message", err)
		return store.ChatMessage{}, ErrFailedSend
	}

	recipient := room.AdvertiserID
	if senderIsAdvertiser {
		recipient = room.InfluencerID
	}
	if _, err := p.notifier.Notify(ctx, store.CreateNotificationParams{
		UserID:  recipient,
		Type:    store.NotificationTypeNewMessage,
		Title:   "새 메시지가 도착했어요",
		Message: preview(content),
		Metadata: store.JSONB{
			"room_id":     roomID.String(),
			"campaign_id": room.CampaignID.String(),
			"sender_id":   userID.String(),
			"message_id":  message.ID.String(),
		},
		Priority: store.NotificationPriorityNormal,
	}); err != nil {
		// message is already stored
		p.logger.InfoWithError(ctx, "failed to notify chat recipient", err)
	}

	return message, nil
}

// MarkRead clears the caller's unread counter for the room
func (p *ChatProcessor) MarkRead(ctx context.Context, userID, roomID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "room_id", Value: roomID.String()},
	)

	room, err := p.participantRoom(ctx, userID, roomID)
	if err != nil {
		return err
	}

	if err := p.store.MarkChatRoomRead(ctx, roomID, room.AdvertiserID == userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoomNotFound
		}
		p.logger.Error(ctx, "failed to mark chat room read", err)
		return ErrFailedMarkRead
	}
	return nil
}

func (p *ChatProcessor) participantRoom(ctx context.Context, userID, roomID uuid.UUID) (store.ChatRoom, error) {
	room, err := p.store.GetChatRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ChatRoom{}, ErrRoomNotFound
		}
		p.logger.Error(ctx, "failed to get chat room", err)
		return store.ChatRoom{}, ErrFailedGetRoom
	}
	if room.AdvertiserID != userID && room.InfluencerID != userID {
		return store.ChatRoom{}, ErrNotParticipant
	}
	return room, nil
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "…"
}
