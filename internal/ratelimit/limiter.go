package ratelimit

import (
	"context"
	"fmt"
	"time"

	redisclient "itda-server/internal/clients/redis"
	"itda-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Result is the outcome of one rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter is a Redis sliding window limiter. A nil Limiter, or one without a
// live Redis connection, allows every request.
type Limiter struct {
	redis  *redisclient.Client
	name   string
	limit  int
	window time.Duration
	now    func() time.Time
	logger *observability.Logger
}

// NewLimiter allows limit requests per key within window. name namespaces the keys.
func NewLimiter(client *redisclient.Client, name string, limit int, window time.Duration, logger *observability.Logger) *Limiter {
	return &Limiter{
		redis:  client,
		name:   name,
		limit:  limit,
		window: window,
		now:    time.Now,
		logger: logger,
	}
}

func (l *Limiter) enabled() bool {
	return l != nil && l.redis.IsEnabled()
}

// Allow records one request for key and reports whether it fits the window
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	if !l.enabled() {
		return Result{Allowed: true}, nil
	}

	rdb := l.redis.GetClient()
	redisKey := fmt.Sprintf("rl:%s:%s", l.name, key)
	now := l.now()
	windowStart := now.Add(-l.window)

	// Drop entries that slid out of the window
	if err := rdb.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.UnixMilli())).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to trim rate limit window: %w", err)
	}

	count, err := rdb.ZCard(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= l.limit {
		resetAt := now.Add(l.window)
		oldest, err := rdb.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(l.window)
		}
		return Result{
			Allowed:    false,
			Limit:      l.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: max(resetAt.Sub(now), 0),
		}, nil
	}

	// Members must be unique so two requests in the same millisecond both count
	if err := rdb.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	}).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}
	if err := rdb.Expire(ctx, redisKey, 2*l.window).Err(); err != nil {
		l.logger.InfoWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - int(count) - 1,
		ResetAt:   now.Add(l.window),
	}, nil
}
