package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter implements fixed-window counting with INCR plus EXPIRE.
// The first increment in a window sets the TTL; the window resets when the
// key expires.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, windowSeconds int) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	redisKey := fmt.Sprintf("ratelimit:%s", key)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, time.Duration(windowSeconds)*time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return incr.Val() <= int64(limit), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, fmt.Sprintf("ratelimit:%s", key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit key: %w", err)
	}
	return nil
}
