package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	pkgRedis "mediasearch-srv/pkg/redis"
)

func counterKey(userID, provider, window string) string {
	return fmt.Sprintf("quota:%s:%s:%s", userID, provider, window)
}

// Increment atomically adds weight to the window counter. The TTL is
// refreshed on every increment so the key outlives the window and then
// disappears on its own.
func (r *implCounterRepository) Increment(ctx context.Context, userID, provider, window string, weight int64, ttl time.Duration) (int64, error) {
	key := counterKey(userID, provider, window)

	value, err := r.redis.IncrBy(ctx, key, weight)
	if err != nil {
		r.l.Errorf(ctx, "quota.repository.redis.Increment: INCRBY %s: %v", key, err)
		return 0, err
	}
	if err := r.redis.Expire(ctx, key, ttl); err != nil {
		r.l.Warnf(ctx, "quota.repository.redis.Increment: EXPIRE %s: %v", key, err)
	}
	return value, nil
}

// Current reads the counter, treating an absent key as zero.
func (r *implCounterRepository) Current(ctx context.Context, userID, provider, window string) (int64, error) {
	key := counterKey(userID, provider, window)

	raw, err := r.redis.Get(ctx, key)
	if err == pkgRedis.Nil {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "quota.repository.redis.Current: GET %s: %v", key, err)
		return 0, err
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("quota counter %s holds non-numeric value %q", key, raw)
	}
	return value, nil
}
