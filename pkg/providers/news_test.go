package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mediasearch-srv/internal/model"
	pkgHTTP "mediasearch-srv/pkg/http"
	"mediasearch-srv/pkg/log"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "debug"})
}

func testClient() pkgHTTP.IClient {
	return pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   5 * time.Second,
		Retries:   0,
		RetryWait: time.Millisecond,
	})
}

func testQuery(provider string) model.QueryDescriptor {
	return model.QueryDescriptor{
		ProviderName: provider,
		QueryText:    "climate AND policy",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local),
	}
}

func TestNewsProviderCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/count" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req newsSearchReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Query != "climate AND policy" {
			t.Errorf("query = %q", req.Query)
		}
		if req.Start != "2024-01-01" || req.End != "2024-01-31" {
			t.Errorf("dates = %s..%s", req.Start, req.End)
		}
		json.NewEncoder(w).Encode(map[string]int64{"count": 1234})
	}))
	defer srv.Close()

	p := newNewsProvider(testLogger(), testClient(), ProviderOnlineNewsMediaCloud, srv.URL, "", true)
	count, err := p.Count(context.Background(), testQuery(ProviderOnlineNewsMediaCloud))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1234 {
		t.Errorf("count = %d, want 1234", count)
	}
}

func TestNewsProviderQueryRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "unknown field: titel"})
	}))
	defer srv.Close()

	p := newNewsProvider(testLogger(), testClient(), ProviderOnlineNewsMediaCloud, srv.URL, "", true)
	_, err := p.Count(context.Background(), testQuery(ProviderOnlineNewsMediaCloud))

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Message != "unknown field: titel" {
		t.Errorf("message = %q", provErr.Message)
	}
}

func TestNewsProviderNormalizedUnsupported(t *testing.T) {
	p := newNewsProvider(testLogger(), testClient(), ProviderOnlineNewsWayback, "http://unused", "", false)
	_, err := p.NormalizedCountOverTime(context.Background(), testQuery(ProviderOnlineNewsWayback))
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Fatalf("expected ErrUnsupportedOperation, got %v", err)
	}
}

func TestNewsProviderAllItemsPagination(t *testing.T) {
	pages := map[string][]Story{
		"":   {{"id": "a", "title": "one"}, {"id": "b", "title": "two"}},
		"t1": {{"id": "c", "title": "three"}},
	}
	nextTokens := map[string]string{"": "t1", "t1": ""}

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req newsSearchReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"stories":          pages[req.Token],
			"pagination_token": nextTokens[req.Token],
		})
	}))
	defer srv.Close()

	p := newNewsProvider(testLogger(), testClient(), ProviderOnlineNewsMediaCloud, srv.URL, "", true)
	it := p.AllItems(context.Background(), testQuery(ProviderOnlineNewsMediaCloud))

	var stories []Story
	for it.Next(context.Background()) {
		stories = append(stories, it.Page()...)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}
	if len(stories) != 3 {
		t.Errorf("got %d stories, want 3", len(stories))
	}
	if calls != 2 {
		t.Errorf("got %d page fetches, want 2", calls)
	}
}

func TestNewsProviderIteratorCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"stories":          []Story{{"id": "a"}},
			"pagination_token": "more",
		})
	}))
	defer srv.Close()

	p := newNewsProvider(testLogger(), testClient(), ProviderOnlineNewsMediaCloud, srv.URL, "", true)

	ctx, cancel := context.WithCancel(context.Background())
	it := p.AllItems(ctx, testQuery(ProviderOnlineNewsMediaCloud))

	if !it.Next(ctx) {
		t.Fatalf("first page should succeed: %v", it.Err())
	}
	cancel()
	if it.Next(ctx) {
		t.Fatal("Next should stop after cancellation")
	}
	if !errors.Is(it.Err(), context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", it.Err())
	}
}
