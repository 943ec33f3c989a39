package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/quota"
	"mediasearch-srv/internal/search"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/paginator"
	"mediasearch-srv/pkg/providers"
)

type fakeProvider struct {
	name string

	counts        map[string]int64 // by query text
	countErr      error
	normalized    providers.CountOverTimeResult
	normalizedErr error
	plainCounts   []providers.DateCount
	plainErr      error
	terms         []providers.Term
	termsErr      error
	sample        []providers.Story
	item          providers.Story
	itemErr       error
	paged         []providers.Story
	pagedNext     string
	pagedErr      error

	lastLimit int
	lastToken string
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Count(_ context.Context, q model.QueryDescriptor) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n, ok := f.counts[q.QueryText]
	if !ok {
		return 0, providers.ErrUnsupportedOperation
	}
	return n, nil
}

func (f *fakeProvider) CountOverTime(context.Context, model.QueryDescriptor) ([]providers.DateCount, error) {
	return f.plainCounts, f.plainErr
}

func (f *fakeProvider) NormalizedCountOverTime(context.Context, model.QueryDescriptor) (providers.CountOverTimeResult, error) {
	return f.normalized, f.normalizedErr
}

func (f *fakeProvider) Sources(_ context.Context, _ model.QueryDescriptor, limit int) ([]providers.Term, error) {
	f.lastLimit = limit
	return f.terms, f.termsErr
}

func (f *fakeProvider) Languages(_ context.Context, _ model.QueryDescriptor, limit int) ([]providers.Term, error) {
	f.lastLimit = limit
	return f.terms, f.termsErr
}

func (f *fakeProvider) Words(_ context.Context, _ model.QueryDescriptor, limit int) ([]providers.Term, error) {
	f.lastLimit = limit
	return f.terms, f.termsErr
}

func (f *fakeProvider) Sample(_ context.Context, _ model.QueryDescriptor, limit int) ([]providers.Story, error) {
	f.lastLimit = limit
	return f.sample, nil
}

func (f *fakeProvider) Item(context.Context, model.QueryDescriptor, string) (providers.Story, error) {
	return f.item, f.itemErr
}

func (f *fakeProvider) PagedItems(_ context.Context, _ model.QueryDescriptor, token string) ([]providers.Story, string, error) {
	f.lastToken = token
	return f.paged, f.pagedNext, f.pagedErr
}

func (f *fakeProvider) AllItems(context.Context, model.QueryDescriptor) providers.StoryIterator {
	return nil
}

type fakeResolver struct {
	provider *fakeProvider
}

func (f *fakeResolver) Resolve(model.QueryDescriptor) (providers.ContentProvider, error) {
	return f.provider, nil
}

type fakeQuota struct {
	charges  []string
	admitErr error
}

func (f *fakeQuota) Charge(_ context.Context, _ model.Scope, provider, operation string, weight int64) error {
	f.charges = append(f.charges, fmt.Sprintf("%s:%s:%d", provider, operation, weight))
	return nil
}

func (f *fakeQuota) CheckAdmission(context.Context, model.Scope, string) error { return f.admitErr }

func (f *fakeQuota) Usage(context.Context, model.Scope, string) (model.QuotaUsage, error) {
	return model.QuotaUsage{}, nil
}

func (f *fakeQuota) RecordHistory(context.Context, model.QuotaChargeEvent) error { return nil }

func (f *fakeQuota) History(context.Context, model.Scope, paginator.PaginateQuery) (quota.HistoryOutput, error) {
	return quota.HistoryOutput{}, nil
}

func testUC(p *fakeProvider, q *fakeQuota) search.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug"})
	return New(&fakeResolver{provider: p}, q, l, Config{})
}

func newsQuery(text string) model.QueryDescriptor {
	return model.QueryDescriptor{
		ProviderName: providers.ProviderOnlineNewsMediaCloud,
		QueryText:    text,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local),
	}
}

func TestTotalCount(t *testing.T) {
	t.Run("relevant and collection total", func(t *testing.T) {
		p := &fakeProvider{
			name:   providers.ProviderOnlineNewsMediaCloud,
			counts: map[string]int64{"climate": 120, "*": 40000},
		}
		quotaUC := &fakeQuota{}
		uc := testUC(p, quotaUC)

		out, err := uc.TotalCount(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate"))
		if err != nil {
			t.Fatalf("TotalCount: %v", err)
		}
		if out.Relevant != 120 {
			t.Errorf("relevant = %d", out.Relevant)
		}
		if out.Total == nil || *out.Total != 40000 {
			t.Errorf("total = %v, want 40000", out.Total)
		}
		if len(quotaUC.charges) != 1 || quotaUC.charges[0] != "onlinenews-mediacloud:count:1" {
			t.Errorf("charges = %v", quotaUC.charges)
		}
	})

	t.Run("total omitted when everything-query unsupported", func(t *testing.T) {
		p := &fakeProvider{
			name:   providers.ProviderRedditPushshift,
			counts: map[string]int64{"climate": 55},
		}
		uc := testUC(p, &fakeQuota{})

		q := newsQuery("climate")
		q.ProviderName = providers.ProviderRedditPushshift
		out, err := uc.TotalCount(context.Background(), model.Scope{UserID: "u1"}, q)
		if err != nil {
			t.Fatalf("TotalCount: %v", err)
		}
		if out.Relevant != 55 || out.Total != nil {
			t.Errorf("out = %+v, want relevant 55 and no total", out)
		}
	})
}

func TestCountOverTimeNormalizedFallback(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("normalized when supported", func(t *testing.T) {
		p := &fakeProvider{
			name: providers.ProviderOnlineNewsMediaCloud,
			normalized: providers.CountOverTimeResult{
				Counts: []providers.NormalizedDateCount{
					{Date: day1, Count: 5, TotalCount: 100, Ratio: 0.05},
				},
				Total: 5,
			},
		}
		quotaUC := &fakeQuota{}
		uc := testUC(p, quotaUC)

		out, err := uc.CountOverTime(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate"))
		if err != nil {
			t.Fatalf("CountOverTime: %v", err)
		}
		if !out.Normalized || out.Counts[0].Ratio != 0.05 {
			t.Errorf("out = %+v", out)
		}
		if quotaUC.charges[0] != "onlinenews-mediacloud:counts-over-time:1" {
			t.Errorf("charges = %v", quotaUC.charges)
		}
	})

	t.Run("plain fallback marked not normalized", func(t *testing.T) {
		p := &fakeProvider{
			name:          providers.ProviderOnlineNewsWayback,
			normalizedErr: providers.ErrUnsupportedOperation,
			plainCounts: []providers.DateCount{
				{Date: day1, Count: 3},
				{Date: day2, Count: 7},
			},
		}
		quotaUC := &fakeQuota{}
		uc := testUC(p, quotaUC)

		out, err := uc.CountOverTime(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate"))
		if err != nil {
			t.Fatalf("CountOverTime: %v", err)
		}
		if out.Normalized {
			t.Error("fallback result must not claim normalization")
		}
		if len(out.Counts) != 2 || out.Counts[1].Count != 7 || out.Counts[1].TotalCount != 0 {
			t.Errorf("counts = %+v", out.Counts)
		}
		if out.Total != 10 {
			t.Errorf("total = %d, want 10", out.Total)
		}
		// Exactly one charge despite the two provider calls.
		if len(quotaUC.charges) != 1 {
			t.Errorf("charges = %v", quotaUC.charges)
		}
	})

	t.Run("real failures are not swallowed", func(t *testing.T) {
		p := &fakeProvider{
			name:          providers.ProviderOnlineNewsMediaCloud,
			normalizedErr: errors.New("backend down"),
		}
		quotaUC := &fakeQuota{}
		uc := testUC(p, quotaUC)

		if _, err := uc.CountOverTime(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate")); err == nil {
			t.Fatal("expected error")
		}
		if len(quotaUC.charges) != 0 {
			t.Error("failed operation must not charge")
		}
	})
}

func TestWordsRatio(t *testing.T) {
	p := &fakeProvider{
		name: providers.ProviderOnlineNewsMediaCloud,
		terms: []providers.Term{
			{Name: "climate", Count: 250},
			{Name: "energy", Count: 40},
		},
	}
	quotaUC := &fakeQuota{}
	uc := testUC(p, quotaUC)

	out, err := uc.Words(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate"))
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if out.Terms[0].Ratio != 0.25 || out.Terms[1].Ratio != 0.04 {
		t.Errorf("ratios = %+v", out.Terms)
	}
	if quotaUC.charges[0] != "onlinenews-mediacloud:words:4" {
		t.Errorf("charges = %v", quotaUC.charges)
	}
}

func TestSourcesWeight(t *testing.T) {
	cases := []struct {
		provider string
		want     string
	}{
		{providers.ProviderOnlineNewsMediaCloud, "onlinenews-mediacloud:sources:4"},
		{providers.ProviderRedditPushshift, "reddit-pushshift:sources:4"},
	}
	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			p := &fakeProvider{name: tc.provider, terms: []providers.Term{{Name: "a", Count: 1}}}
			quotaUC := &fakeQuota{}
			uc := testUC(p, quotaUC)

			q := newsQuery("climate")
			q.ProviderName = tc.provider
			if _, err := uc.Sources(context.Background(), model.Scope{UserID: "u1"}, q); err != nil {
				t.Fatalf("Sources: %v", err)
			}
			if quotaUC.charges[0] != tc.want {
				t.Errorf("charge = %q, want %q", quotaUC.charges[0], tc.want)
			}
		})
	}
}

func TestStoryList(t *testing.T) {
	stories := []providers.Story{{"id": "s1"}, {"id": "s2"}}

	t.Run("page and token pass through", func(t *testing.T) {
		p := &fakeProvider{
			name:      providers.ProviderOnlineNewsMediaCloud,
			paged:     stories,
			pagedNext: "tok-2",
		}
		quotaUC := &fakeQuota{}
		uc := testUC(p, quotaUC)

		out, err := uc.StoryList(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate"), "tok-1")
		if err != nil {
			t.Fatalf("StoryList: %v", err)
		}
		if len(out.Stories) != 2 || out.PaginationToken != "tok-2" {
			t.Errorf("out = %+v", out)
		}
		if p.lastToken != "tok-1" {
			t.Errorf("provider got token %q, want tok-1", p.lastToken)
		}
		if len(quotaUC.charges) != 1 || quotaUC.charges[0] != "onlinenews-mediacloud:story-list:1" {
			t.Errorf("charges = %v", quotaUC.charges)
		}
	})

	t.Run("expanded denied for non-staff", func(t *testing.T) {
		p := &fakeProvider{name: providers.ProviderOnlineNewsMediaCloud, paged: stories}
		quotaUC := &fakeQuota{}
		uc := testUC(p, quotaUC)

		q := newsQuery("climate")
		q.ProviderOptions = map[string]any{"expanded": true}
		_, err := uc.StoryList(context.Background(), model.Scope{UserID: "u1"}, q, "")
		if !errors.Is(err, search.ErrExpandedStaffOnly) {
			t.Fatalf("err = %v, want ErrExpandedStaffOnly", err)
		}
		if len(quotaUC.charges) != 0 {
			t.Error("denied request must not charge")
		}
	})

	t.Run("expanded allowed for staff", func(t *testing.T) {
		p := &fakeProvider{name: providers.ProviderOnlineNewsMediaCloud, paged: stories}
		uc := testUC(p, &fakeQuota{})

		q := newsQuery("climate")
		q.ProviderOptions = map[string]any{"expanded": "1"}
		out, err := uc.StoryList(context.Background(), model.Scope{UserID: "u1", IsStaff: true}, q, "")
		if err != nil {
			t.Fatalf("StoryList: %v", err)
		}
		if len(out.Stories) != 2 {
			t.Errorf("stories = %+v", out.Stories)
		}
	})
}

func TestStoryDetailNotFound(t *testing.T) {
	p := &fakeProvider{
		name:    providers.ProviderOnlineNewsMediaCloud,
		itemErr: providers.NewProviderError(providers.ProviderOnlineNewsMediaCloud, "no such story"),
	}
	uc := testUC(p, &fakeQuota{})

	_, err := uc.StoryDetail(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate"), "missing")
	if !errors.Is(err, search.ErrStoryNotFound) {
		t.Fatalf("err = %v, want ErrStoryNotFound", err)
	}
}

func TestValidation(t *testing.T) {
	p := &fakeProvider{name: providers.ProviderOnlineNewsMediaCloud}
	quotaUC := &fakeQuota{}
	uc := testUC(p, quotaUC)
	sc := model.Scope{UserID: "u1"}

	t.Run("empty query text", func(t *testing.T) {
		q := newsQuery("")
		if _, err := uc.Sample(context.Background(), sc, q); !errors.Is(err, search.ErrMissingQueryText) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("inverted date range", func(t *testing.T) {
		q := newsQuery("climate")
		q.StartDate, q.EndDate = q.EndDate, q.StartDate
		if _, err := uc.Sample(context.Background(), sc, q); !errors.Is(err, search.ErrInvalidDateRange) {
			t.Fatalf("err = %v", err)
		}
	})

	if len(quotaUC.charges) != 0 {
		t.Errorf("invalid requests must not charge, got %v", quotaUC.charges)
	}
}

func TestAdmissionDenied(t *testing.T) {
	p := &fakeProvider{name: providers.ProviderOnlineNewsMediaCloud, counts: map[string]int64{"climate": 1}}
	quotaUC := &fakeQuota{admitErr: errors.New("over quota")}
	uc := testUC(p, quotaUC)

	if _, err := uc.TotalCount(context.Background(), model.Scope{UserID: "u1"}, newsQuery("climate")); err == nil {
		t.Fatal("expected admission error")
	}
	if len(quotaUC.charges) != 0 {
		t.Error("denied request must not charge")
	}
}
