package ratelimit

import "context"

// RateLimiter answers whether one more request under the key fits in the
// current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, windowSeconds int) (bool, error)
	Reset(ctx context.Context, key string) error
}
