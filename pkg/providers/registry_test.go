package providers

import (
	"errors"
	"testing"

	"mediasearch-srv/internal/model"
)

func testRegistry() *Registry {
	return NewRegistry(testLogger(), testClient(), nil, Config{
		BaseURLs: map[string]string{
			ProviderOnlineNewsMediaCloud: "http://news.local",
			ProviderOnlineNewsWayback:    "http://wayback.local",
			ProviderRedditPushshift:      "http://reddit.local",
		},
	})
}

func TestRegistryGet(t *testing.T) {
	r := testRegistry()

	for _, name := range []string{
		ProviderOnlineNewsMediaCloud,
		ProviderOnlineNewsWayback,
		ProviderRedditPushshift,
	} {
		p, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("Name() = %s, want %s", p.Name(), name)
		}
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	r := testRegistry()
	_, err := r.Get("onlinenews-typo")
	if !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
}

func TestRegistryResolveWithoutCache(t *testing.T) {
	r := testRegistry()

	q := model.QueryDescriptor{ProviderName: ProviderRedditPushshift, CachingEnabled: true}
	p, err := r.Resolve(q)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// No cache wired, so the raw adapter comes back even when the query
	// opts into caching.
	if _, ok := p.(*cachingProvider); ok {
		t.Error("expected uncached provider when registry has no cache")
	}
}
