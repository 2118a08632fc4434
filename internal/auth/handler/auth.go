package handler

import (
	"errors"
	"itda-server/internal/apierrors"
	"itda-server/internal/auth/processor"
	"itda-server/internal/observability"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware
const (
	ContextUserID   = "User-ID"
	ContextUserType = "User-Type"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware rejects requests without a valid session token
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	// Extract the JWT token from the header
	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		return
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		apierrors.Unauthorized(c, "invalid token subject")
		return
	}

	c.Set(ContextUserID, claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: claims.Subject}))
	c.Next()
}

// RequireUserType allows only users whose type is one of userTypes. Must run after HandleJWTMiddleware.
func (h *Handler) RequireUserType(userTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID, err := CurrentUserID(c)
		if err != nil {
			apierrors.Unauthorized(c, "unauthorized")
			return
		}

		userType, err := h.authProcessor.GetUserType(ctx, userID)
		if err != nil {
			if errors.Is(err, processor.ErrUserNotFound) {
				apierrors.Unauthorized(c, "user not found")
				return
			}
			apierrors.InternalError(c, err)
			return
		}

		for _, t := range userTypes {
			if t == userType {
				c.Set(ContextUserType, userType)
				c.Next()
				return
			}
		}
		apierrors.Forbidden(c, "This action is not available for your account type")
	}
}

// GetUserInfo handles GET /api/protected/me
func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := CurrentUserID(c)
	if err != nil {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	session, err := h.authProcessor.GetSessionUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, processor.ErrProfileNotFound):
			apierrors.NotFound(c, "Profile not found")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": session})
}

var errNoSession = errors.New("no session user in context")

// CurrentUserID returns the authenticated user id set by HandleJWTMiddleware
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, errNoSession
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errNoSession
	}
	return uuid.Parse(s)
}
