package handler

import (
	"errors"
	"fmt"
	"itda-server/internal/apierrors"
	"itda-server/internal/matches/processor"
	"itda-server/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.MatchProcessor
	logger    *observability.Logger
}

func New(processor processor.MatchProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type ReviewMatchRequest struct {
	Status      string `json:"status" binding:"required,oneof=accepted rejected"`
	AgreedPrice *int64 `json:"agreed_price,omitempty" binding:"omitempty,gte=0"`
}

// HandleListMyMatches lists the session influencer's matches
func (h *Handler) HandleListMyMatches(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	page, limit := pagination(c)
	matches, err := h.processor.ListInfluencerMatches(ctx, userID, page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
		},
	})
}

// HandleListCampaignMatches lists applicants of one of the advertiser's campaigns
func (h *Handler) HandleListCampaignMatches(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return
	}

	page, limit := pagination(c)
	matches, err := h.processor.ListCampaignMatches(ctx, userID, campaignID, c.Query("status"), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
		},
	})
}

// HandleReviewMatch accepts or rejects a pending match
func (h *Handler) HandleReviewMatch(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid match ID format")
		return
	}

	var req ReviewMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	match, err := h.processor.ReviewMatch(ctx, userID, matchID, processor.ReviewParams{
		Status:      req.Status,
		AgreedPrice: req.AgreedPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "match": match})
}

func pagination(c *gin.Context) (int, int) {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if _, err := fmt.Sscanf(pageStr, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit < 1 || limit > 100 {
			limit = 20
		}
	}
	return page, limit
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
	case errors.Is(err, processor.ErrMatchNotFound):
		apierrors.NotFound(c, "Match not found")
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrNotCampaignOwner):
		apierrors.Forbidden(c, "You do not own this campaign")
	case errors.Is(err, processor.ErrMatchNotPending):
		apierrors.Conflict(c, apierrors.CodeInvalidStatus, "Match has already been reviewed")
	case errors.Is(err, processor.ErrInvalidStatus):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid match status")
	case errors.Is(err, processor.ErrInvalidPrice):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Agreed price must not be negative")
	default:
		apierrors.InternalError(c, err)
	}
}
