package handler

import (
	"errors"
	"fmt"
	"itda-server/internal/apierrors"
	"itda-server/internal/chat/processor"
	"itda-server/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ChatProcessor
	logger    *observability.Logger
}

func New(processor processor.ChatProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// HandleListRooms lists the caller's chat rooms
func (h *Handler) HandleListRooms(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	rooms, err := h.processor.ListRooms(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
}

// HandleListMessages lists a page of messages in a room
func (h *Handler) HandleListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	roomID, ok := h.getRoomID(c)
	if !ok {
		return
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if _, err := fmt.Sscanf(pageStr, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit < 1 || limit > 100 {
			limit = 50
		}
	}

	messages, err := h.processor.ListMessages(ctx, userID, roomID, page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": messages,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
		},
	})
}

// HandleSendMessage posts a message to a room
func (h *Handler) HandleSendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	roomID, ok := h.getRoomID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	message, err := h.processor.SendMessage(ctx, userID, roomID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}

// HandleMarkRead resets the caller's unread counter for a room
func (h *Handler) HandleMarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	roomID, ok := h.getRoomID(c)
	if !ok {
		return
	}

	if err := h.processor.MarkRead(ctx, userID, roomID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.Unauthorized(c, "User ID not found in context")
		return uuid.UUID{}, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.Unauthorized(c, "Invalid user ID")
		return uuid.UUID{}, false
	}
	return userID, true
}

func (h *Handler) getRoomID(c *gin.Context) (uuid.UUID, bool) {
	roomID, err := uuid.Parse(c.Param("room_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid room ID format")
		return uuid.UUID{}, false
	}
	return roomID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrRoomNotFound):
		apierrors.NotFound(c, "Chat room not found")
	case errors.Is(err, processor.ErrNotParticipant):
		apierrors.Forbidden(c, "You are not a participant of this chat room")
	case errors.Is(err, processor.ErrEmptyMessage):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Message content is required")
	case errors.Is(err, processor.ErrMessageTooLong):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Message content is too long")
	default:
		apierrors.InternalError(c, err)
	}
}
