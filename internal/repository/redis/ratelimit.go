package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/adiwarta/warta/domain"
)

const rateLimitKeyPrefix = "ratelimit:"

type rateLimiter struct {
	client *redis.Client
}

var _ domain.RateLimiter = (*rateLimiter)(nil)

func NewRateLimiter(client *redis.Client) *rateLimiter {
	return &rateLimiter{
		client: client,
	}
}

// IsLimited counts this call against a fixed window and reports whether the
// key is over its limit. The window starts when the first event of a cycle
// arrives and expires as a whole.
func (r *rateLimiter) IsLimited(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	fullKey := rateLimitKeyPrefix + key
	count, err := r.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, fullKey, window).Err(); err != nil {
			logrus.Warnf("failed to set expiry on %s: %v", fullKey, err)
		}
	}
	return count > limit, nil
}
