package providers

import (
	"fmt"

	"mediasearch-srv/internal/model"
	pkgHTTP "mediasearch-srv/pkg/http"
	"mediasearch-srv/pkg/log"
	pkgRedis "mediasearch-srv/pkg/redis"
)

// Registry resolves provider names to configured adapters. Safe for
// concurrent use once built.
type Registry struct {
	l         log.Logger
	cache     pkgRedis.IRedis
	cfg       Config
	providers map[string]ContentProvider
}

// NewRegistry builds the registry with all known adapters. The cache may be
// nil, in which case caching-enabled queries run uncached.
func NewRegistry(l log.Logger, client pkgHTTP.IClient, cache pkgRedis.IRedis, cfg Config) *Registry {
	r := &Registry{
		l:         l,
		cache:     cache,
		cfg:       cfg,
		providers: make(map[string]ContentProvider),
	}

	r.providers[ProviderOnlineNewsMediaCloud] = newNewsProvider(
		l, client, ProviderOnlineNewsMediaCloud,
		cfg.BaseURLs[ProviderOnlineNewsMediaCloud],
		cfg.APIKeys[ProviderOnlineNewsMediaCloud],
		true,
	)
	r.providers[ProviderOnlineNewsWayback] = newNewsProvider(
		l, client, ProviderOnlineNewsWayback,
		cfg.BaseURLs[ProviderOnlineNewsWayback],
		cfg.APIKeys[ProviderOnlineNewsWayback],
		false,
	)
	r.providers[ProviderRedditPushshift] = newRedditProvider(
		l, client,
		cfg.BaseURLs[ProviderRedditPushshift],
		cfg.APIKeys[ProviderRedditPushshift],
	)

	return r
}

// Names returns the registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Get returns the adapter for a provider name.
func (r *Registry) Get(name string) (ContentProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProviderNotFound, name)
	}
	return p, nil
}

// Resolve returns the adapter for a query, wrapped with the Redis cache when
// the query opts in and a cache is available.
func (r *Registry) Resolve(q model.QueryDescriptor) (ContentProvider, error) {
	p, err := r.Get(q.ProviderName)
	if err != nil {
		return nil, err
	}
	if q.CachingEnabled && r.cache != nil {
		return newCachingProvider(r.l, p, r.cache, r.cfg.CacheTTL), nil
	}
	return p, nil
}
