package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"mediasearch-srv/internal/model"
	pkgHTTP "mediasearch-srv/pkg/http"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/util"
)

// redditProvider searches Reddit submissions through a Pushshift-style API.
// The archive has no language or word aggregations and no per-day totals,
// so Languages, Words and NormalizedCountOverTime are unsupported.
type redditProvider struct {
	l       log.Logger
	client  pkgHTTP.IClient
	baseURL string
	apiKey  string
}

func newRedditProvider(l log.Logger, client pkgHTTP.IClient, baseURL, apiKey string) *redditProvider {
	return &redditProvider{l: l, client: client, baseURL: baseURL, apiKey: apiKey}
}

func (p *redditProvider) Name() string { return ProviderRedditPushshift }

type redditEnvelope struct {
	Data     []Story `json:"data"`
	Metadata struct {
		TotalResults int64 `json:"total_results"`
	} `json:"metadata"`
	Aggs struct {
		CreatedUTC []struct {
			Key      int64 `json:"key"`
			DocCount int64 `json:"doc_count"`
		} `json:"created_utc"`
		Subreddit []struct {
			Key      string `json:"key"`
			DocCount int64  `json:"doc_count"`
		} `json:"subreddit"`
	} `json:"aggs"`
}

func (p *redditProvider) get(ctx context.Context, q model.QueryDescriptor, params url.Values) (*redditEnvelope, error) {
	base := p.baseURL
	if q.BaseURL != "" {
		base = q.BaseURL
	}
	apiKey := p.apiKey
	if q.APIKey != "" {
		apiKey = q.APIKey
	}

	params.Set("q", q.QueryText)
	params.Set("after", strconv.FormatInt(q.StartDate.Unix(), 10))
	// A paging cursor narrows the window below the query's end date.
	if params.Get("before") == "" {
		params.Set("before", strconv.FormatInt(util.EndOfDay(q.EndDate).Unix(), 10))
	}

	headers := map[string]string{}
	if apiKey != "" {
		headers["Authorization"] = "Bearer " + apiKey
	}

	endpoint := base + "/reddit/search/submission?" + params.Encode()
	body, status, err := p.client.Get(ctx, endpoint, headers)
	if err != nil {
		return nil, fmt.Errorf("providers.%s: %w", p.Name(), err)
	}
	if status == http.StatusBadRequest {
		var detail struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(body, &detail)
		if detail.Detail == "" {
			detail.Detail = "query rejected"
		}
		return nil, NewProviderError(p.Name(), detail.Detail)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("providers.%s: unexpected status %d", p.Name(), status)
	}

	var env redditEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("providers.%s: decode response: %w", p.Name(), err)
	}
	return &env, nil
}

func (p *redditProvider) Count(ctx context.Context, q model.QueryDescriptor) (int64, error) {
	params := url.Values{}
	params.Set("size", "0")
	params.Set("metadata", "true")
	env, err := p.get(ctx, q, params)
	if err != nil {
		return 0, err
	}
	return env.Metadata.TotalResults, nil
}

func (p *redditProvider) CountOverTime(ctx context.Context, q model.QueryDescriptor) ([]DateCount, error) {
	params := url.Values{}
	params.Set("size", "0")
	params.Set("aggs", "created_utc")
	params.Set("frequency", "day")
	env, err := p.get(ctx, q, params)
	if err != nil {
		return nil, err
	}

	counts := make([]DateCount, 0, len(env.Aggs.CreatedUTC))
	for _, b := range env.Aggs.CreatedUTC {
		counts = append(counts, DateCount{
			Date:  util.StartOfDay(time.Unix(b.Key, 0)),
			Count: b.DocCount,
		})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date.Before(counts[j].Date) })
	return counts, nil
}

func (p *redditProvider) NormalizedCountOverTime(context.Context, model.QueryDescriptor) (CountOverTimeResult, error) {
	return CountOverTimeResult{}, ErrUnsupportedOperation
}

// Sources are subreddits for this backend.
func (p *redditProvider) Sources(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error) {
	params := url.Values{}
	params.Set("size", "0")
	params.Set("aggs", "subreddit")
	params.Set("agg_size", strconv.Itoa(limit))
	env, err := p.get(ctx, q, params)
	if err != nil {
		return nil, err
	}

	terms := make([]Term, 0, len(env.Aggs.Subreddit))
	for _, b := range env.Aggs.Subreddit {
		terms = append(terms, Term{Name: b.Key, Count: b.DocCount})
	}
	return terms, nil
}

func (p *redditProvider) Languages(context.Context, model.QueryDescriptor, int) ([]Term, error) {
	return nil, ErrUnsupportedOperation
}

func (p *redditProvider) Words(context.Context, model.QueryDescriptor, int) ([]Term, error) {
	return nil, ErrUnsupportedOperation
}

func (p *redditProvider) Sample(ctx context.Context, q model.QueryDescriptor, limit int) ([]Story, error) {
	params := url.Values{}
	params.Set("size", strconv.Itoa(limit))
	env, err := p.get(ctx, q, params)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (p *redditProvider) Item(ctx context.Context, q model.QueryDescriptor, itemID string) (Story, error) {
	params := url.Values{}
	params.Set("ids", itemID)
	params.Set("size", "1")
	env, err := p.get(ctx, q, params)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, NewProviderError(p.Name(), fmt.Sprintf("submission %s not found", itemID))
	}
	return env.Data[0], nil
}

// PagedItems pages by sliding the before-cursor to the oldest created_utc
// of the previous page, the standard Pushshift deep-paging scheme.
func (p *redditProvider) PagedItems(ctx context.Context, q model.QueryDescriptor, token string) ([]Story, string, error) {
	params := url.Values{}
	params.Set("size", strconv.Itoa(DefaultPageSize))
	params.Set("sort", "desc")
	params.Set("sort_type", "created_utc")

	if token != "" {
		before, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("providers.%s: bad pagination token %q", p.Name(), token)
		}
		params.Set("before", strconv.FormatInt(before, 10))
	}

	env, err := p.get(ctx, q, params)
	if err != nil {
		return nil, "", err
	}
	if len(env.Data) == 0 {
		return nil, "", nil
	}

	next := ""
	if created, ok := env.Data[len(env.Data)-1]["created_utc"].(float64); ok && len(env.Data) == DefaultPageSize {
		next = strconv.FormatInt(int64(created), 10)
	}
	return env.Data, next, nil
}

func (p *redditProvider) AllItems(_ context.Context, q model.QueryDescriptor) StoryIterator {
	return newPageIterator(func(ctx context.Context, token string) ([]Story, string, error) {
		return p.PagedItems(ctx, q, token)
	})
}
