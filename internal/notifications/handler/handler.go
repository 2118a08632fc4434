package handler

import (
	"errors"
	"fmt"
	"itda-server/internal/apierrors"
	"itda-server/internal/notifications/processor"
	"itda-server/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.NotificationProcessor
	logger    *observability.Logger
}

func New(processor processor.NotificationProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubscribeRequest mirrors the browser PushSubscription JSON
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// UnsubscribeRequest identifies the endpoint to remove
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// HandleListNotifications lists the user's notifications
func (h *Handler) HandleListNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

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

	unreadOnly := c.Query("unread") == "true"

	result, err := h.processor.ListNotifications(ctx, userID, unreadOnly, page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": result.Notifications,
		"unread_count":  result.UnreadCount,
		"pagination": gin.H{
			"page":  result.Page,
			"limit": result.Limit,
		},
	})
}

// HandleGetUnreadCount returns the unread badge count
func (h *Handler) HandleGetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	count, err := h.processor.GetUnreadCount(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "unread_count": count})
}

// HandleMarkAsRead marks a single notification read
func (h *Handler) HandleMarkAsRead(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	notificationID, ok := h.getNotificationID(c)
	if !ok {
		return
	}

	if err := h.processor.MarkAsRead(ctx, userID, notificationID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleMarkAllAsRead marks every notification read
func (h *Handler) HandleMarkAllAsRead(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	updated, err := h.processor.MarkAllAsRead(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

// HandleDismiss records a dismissal; it always reports success
func (h *Handler) HandleDismiss(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	notificationID, ok := h.getNotificationID(c)
	if !ok {
		return
	}

	h.processor.Dismiss(ctx, userID, notificationID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleSubscribe registers a Web Push endpoint for the user
func (h *Handler) HandleSubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	sub, err := h.processor.RegisterPushSubscription(ctx, userID, processor.RegisterPushParams{
		Endpoint:   req.Endpoint,
		P256dh:     req.Keys.P256dh,
		Auth:       req.Keys.Auth,
		DeviceType: observability.GetDeviceType(c),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "subscription": sub})
}

// HandleUnsubscribe removes a Web Push endpoint
func (h *Handler) HandleUnsubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.UnregisterPushSubscription(ctx, userID, req.Endpoint); err != nil {
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

func (h *Handler) getNotificationID(c *gin.Context) (uuid.UUID, bool) {
	notificationID, err := uuid.Parse(c.Param("notification_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid notification ID format")
		return uuid.UUID{}, false
	}
	return notificationID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrNotificationNotFound):
		apierrors.NotFound(c, "Notification not found")
	case errors.Is(err, processor.ErrSubscriptionNotFound):
		apierrors.NotFound(c, "Push subscription not found")
	default:
		apierrors.InternalError(c, err)
	}
}
