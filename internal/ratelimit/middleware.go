package ratelimit

import (
	"fmt"
	"math"

	"itda-server/internal/apierrors"
	"itda-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// KeyFunc picks the identity a request is counted against
type KeyFunc func(c *gin.Context) string

// ByClientIP counts requests per caller address
func ByClientIP(c *gin.Context) string {
	return observability.GetRealClientIP(c)
}

// ByUser counts requests per authenticated user, falling back to the client IP
func ByUser(c *gin.Context) string {
	if userID := c.GetString("User-ID"); userID != "" {
		return "user:" + userID
	}
	return "ip:" + observability.GetRealClientIP(c)
}

// Middleware rejects requests over the limit with 429. Redis errors fail open.
func (l *Limiter) Middleware(key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.enabled() {
			c.Next()
			return
		}
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "rate_limit", Value: l.name},
		)

		result, err := l.Allow(ctx, key(c))
		if err != nil {
			l.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(math.Ceil(result.RetryAfter.Seconds()))))
			apierrors.TooManyRequests(c, apierrors.CodeRateLimited, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
