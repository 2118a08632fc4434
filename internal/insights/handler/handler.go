package handler

import (
	"errors"
	"itda-server/internal/apierrors"
	"itda-server/internal/estimator"
	"itda-server/internal/insights/processor"
	"itda-server/internal/observability"
	"itda-server/internal/store"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.InsightsProcessor
	logger    *observability.Logger
}

func New(processor processor.InsightsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// PricePredictionRequest prices the session influencer unless InfluencerID is set
type PricePredictionRequest struct {
	InfluencerID *uuid.UUID         `json:"influencer_id,omitempty"`
	CampaignID   *uuid.UUID         `json:"campaign_id,omitempty"`
	Category     *string            `json:"category,omitempty"`
	Budget       *int64             `json:"budget,omitempty" binding:"omitempty,gte=0"`
	Deliverables *store.Deliverables `json:"deliverables,omitempty"`
}

// HandlePricePrediction returns the estimated collaboration price
func (h *Handler) HandlePricePrediction(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req PricePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	influencerID := userID
	if req.InfluencerID != nil {
		influencerID = *req.InfluencerID
	}

	prediction, err := h.processor.PredictPrice(ctx, processor.PredictPriceParams{
		InfluencerID: influencerID,
		CampaignID:   req.CampaignID,
		Category:     req.Category,
		Budget:       req.Budget,
		Deliverables: req.Deliverables,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	prediction.Confidence = estimator.ClampConfidence(prediction.Confidence)
	c.JSON(http.StatusOK, gin.H{"success": true, "prediction": prediction})
}

// HandleMatchScore explains the session influencer's fit with a campaign
func (h *Handler) HandleMatchScore(c *gin.Context) {
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

	breakdown, err := h.processor.MatchScore(ctx, userID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"campaign_id": campaignID,
		"match_score": breakdown.Score,
		"breakdown":   breakdown,
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
		apierrors.NotFound(c, "Influencer not found")
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrInvalidBudget):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Budget must not be negative")
	default:
		apierrors.InternalError(c, err)
	}
}
