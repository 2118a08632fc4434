package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"itda-server/internal/apierrors"
	"itda-server/internal/observability"
	"itda-server/internal/waitlist/processor"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.WaitlistProcessor
	logger    *observability.Logger
}

func New(processor processor.WaitlistProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SignupRequest represents the HTTP request for joining the waitlist
type SignupRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	UserType        string  `json:"user_type" binding:"required,oneof=influencer advertiser"`
	Name            *string `json:"name,omitempty" binding:"omitempty,max=100"`
	InstagramHandle *string `json:"instagram_handle,omitempty" binding:"omitempty,max=60"`
	CompanyName     *string `json:"company_name,omitempty" binding:"omitempty,max=200"`
}

// HandleSignup handles POST /api/waitlist
func (h *Handler) HandleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	entry, err := h.processor.Signup(ctx, processor.SignupRequest{
		Email:           req.Email,
		UserType:        req.UserType,
		Name:            req.Name,
		InstagramHandle: req.InstagramHandle,
		CompanyName:     req.CompanyName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "entry": entry})
}

// HandleListEntries handles GET /api/protected/admin/waitlist
func (h *Handler) HandleListEntries(c *gin.Context) {
	ctx := c.Request.Context()

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

	response, err := h.processor.ListEntries(ctx, processor.ListEntriesRequest{
		UserType: userTypeFilter(c),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"entries":     response.Entries,
		"total_count": response.TotalCount,
		"page":        response.Page,
		"page_size":   response.PageSize,
		"total_pages": response.TotalPages,
	})
}

// HandleExportEntries handles GET /api/protected/admin/waitlist/export as CSV
func (h *Handler) HandleExportEntries(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.processor.ExportEntries(ctx, userTypeFilter(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="waitlist-%s.csv"`, time.Now().UTC().Format("20060102")))
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write([]string{"email", "user_type", "name", "instagram_handle", "company_name", "created_at"})
	for _, e := range entries {
		_ = writer.Write([]string{
			e.Email,
			e.UserType,
			deref(e.Name),
			deref(e.InstagramHandle),
			deref(e.CompanyName),
			e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error(ctx, "failed to write waitlist export", err)
	}
}

func userTypeFilter(c *gin.Context) *string {
	if userType := c.Query("user_type"); userType != "" {
		return &userType
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrEmailAlreadyExists):
		apierrors.Conflict(c, apierrors.CodeAlreadyExists, "Email is already on the waitlist")
	case errors.Is(err, processor.ErrInvalidUserType):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "user_type must be influencer or advertiser")
	default:
		apierrors.InternalError(c, err)
	}
}
