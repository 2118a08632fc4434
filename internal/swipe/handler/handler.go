package handler

import (
	"errors"
	"fmt"
	"itda-server/internal/apierrors"
	"itda-server/internal/observability"
	"itda-server/internal/swipe/processor"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultQueueSize = 10
	maxQueueSize     = 50
)

type Handler struct {
	processor processor.SwipeProcessor
	logger    *observability.Logger
}

func New(processor processor.SwipeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RecordSwipeRequest represents the HTTP request for a swipe
type RecordSwipeRequest struct {
	CampaignID string `json:"campaign_id" binding:"required,uuid"`
	Action     string `json:"action" binding:"required,oneof=like pass super_like"`
}

// HandleGetSwipeLimit returns today's remaining swipes
func (h *Handler) HandleGetSwipeLimit(c *gin.Context) {
	ctx := c.Request.Context()

	influencerID, ok := h.getUserID(c)
	if !ok {
		return
	}

	limit, err := h.processor.CheckSwipeLimit(ctx, influencerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"can_swipe":   limit.CanSwipe,
		"remaining":   limit.Remaining,
		"used":        limit.Used,
		"daily_limit": limit.DailyLimit,
		"reset_at":    limit.ResetAt,
	})
}

// HandleGetQueue returns the next campaigns to swipe on
func (h *Handler) HandleGetQueue(c *gin.Context) {
	ctx := c.Request.Context()

	influencerID, ok := h.getUserID(c)
	if !ok {
		return
	}

	limit := defaultQueueSize
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit < 1 || limit > maxQueueSize {
			limit = defaultQueueSize
		}
	}

	queue, err := h.processor.GenerateQueue(ctx, influencerID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"campaigns": queue,
		"count":     len(queue),
	})
}

// HandleRecordSwipe records a like, pass or super like
func (h *Handler) HandleRecordSwipe(c *gin.Context) {
	ctx := c.Request.Context()

	influencerID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req RecordSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	campaignID := uuid.MustParse(req.CampaignID)

	result, err := h.processor.RecordSwipe(ctx, influencerID, campaignID, req.Action)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"duplicate":    result.Duplicate,
		"match":        result.Match,
		"chat_room_id": result.ChatRoomID,
		"remaining":    result.Remaining,
	})
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

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInfluencerNotFound):
		apierrors.NotFound(c, "Influencer profile not found")
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrCampaignNotActive):
		apierrors.Conflict(c, apierrors.CodeInvalidStatus, "Campaign is not accepting applications")
	case errors.Is(err, processor.ErrInvalidAction):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid swipe action")
	case errors.Is(err, processor.ErrSwipeLimitReached):
		apierrors.TooManyRequests(c, apierrors.CodeSwipeLimitReached, "Daily swipe limit reached")
	default:
		apierrors.InternalError(c, err)
	}
}
