package providers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/log"
	pkgRedis "mediasearch-srv/pkg/redis"
)

// cachingProvider wraps a ContentProvider and caches single-shot results in
// Redis. Iteration is never cached. Cache failures degrade to a live call.
type cachingProvider struct {
	ContentProvider

	l     log.Logger
	cache pkgRedis.IRedis
	ttl   time.Duration
}

func newCachingProvider(l log.Logger, inner ContentProvider, cache pkgRedis.IRedis, ttl time.Duration) *cachingProvider {
	return &cachingProvider{ContentProvider: inner, l: l, cache: cache, ttl: ttl}
}

func cacheKey(provider, op string, q model.QueryDescriptor, extra string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s", q.QueryText, q.StartDate.Format("2006-01-02"),
		q.EndDate.Format("2006-01-02"), q.BaseURL, extra)
	keys := make([]string, 0, len(q.ProviderOptions))
	for k := range q.ProviderOptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "|%s=%v", k, q.ProviderOptions[k])
	}
	return fmt.Sprintf("providers:%s:%s:%s", provider, op, hex.EncodeToString(h.Sum(nil)))
}

// through runs fn on a cache miss and stores the JSON-encoded result.
func through[T any](ctx context.Context, c *cachingProvider, key string, fn func() (T, error)) (T, error) {
	var zero T

	if cached, err := c.cache.Get(ctx, key); err == nil {
		var out T
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	} else if err != pkgRedis.Nil {
		c.l.Warnf(ctx, "providers.cache: get %s: %v", key, err)
	}

	out, err := fn()
	if err != nil {
		return zero, err
	}

	if encoded, err := json.Marshal(out); err == nil {
		if err := c.cache.Set(ctx, key, string(encoded), c.ttl); err != nil {
			c.l.Warnf(ctx, "providers.cache: set %s: %v", key, err)
		}
	}
	return out, nil
}

func (c *cachingProvider) Count(ctx context.Context, q model.QueryDescriptor) (int64, error) {
	key := cacheKey(c.Name(), "count", q, "")
	return through(ctx, c, key, func() (int64, error) {
		return c.ContentProvider.Count(ctx, q)
	})
}

func (c *cachingProvider) CountOverTime(ctx context.Context, q model.QueryDescriptor) ([]DateCount, error) {
	key := cacheKey(c.Name(), "count-over-time", q, "")
	return through(ctx, c, key, func() ([]DateCount, error) {
		return c.ContentProvider.CountOverTime(ctx, q)
	})
}

func (c *cachingProvider) NormalizedCountOverTime(ctx context.Context, q model.QueryDescriptor) (CountOverTimeResult, error) {
	key := cacheKey(c.Name(), "normalized-count-over-time", q, "")
	return through(ctx, c, key, func() (CountOverTimeResult, error) {
		return c.ContentProvider.NormalizedCountOverTime(ctx, q)
	})
}

func (c *cachingProvider) Sources(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error) {
	key := cacheKey(c.Name(), "sources", q, fmt.Sprint(limit))
	return through(ctx, c, key, func() ([]Term, error) {
		return c.ContentProvider.Sources(ctx, q, limit)
	})
}

func (c *cachingProvider) Languages(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error) {
	key := cacheKey(c.Name(), "languages", q, fmt.Sprint(limit))
	return through(ctx, c, key, func() ([]Term, error) {
		return c.ContentProvider.Languages(ctx, q, limit)
	})
}

func (c *cachingProvider) Words(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error) {
	key := cacheKey(c.Name(), "words", q, fmt.Sprint(limit))
	return through(ctx, c, key, func() ([]Term, error) {
		return c.ContentProvider.Words(ctx, q, limit)
	})
}

func (c *cachingProvider) Sample(ctx context.Context, q model.QueryDescriptor, limit int) ([]Story, error) {
	key := cacheKey(c.Name(), "sample", q, fmt.Sprint(limit))
	return through(ctx, c, key, func() ([]Story, error) {
		return c.ContentProvider.Sample(ctx, q, limit)
	})
}
