package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"mediasearch-srv/internal/model"
	pkgHTTP "mediasearch-srv/pkg/http"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/util"
)

// newsProvider talks to a news-archive search API. Both online news
// backends expose the same API shape; they differ in base URL and in which
// operations the index can answer.
type newsProvider struct {
	l       log.Logger
	client  pkgHTTP.IClient
	name    string
	baseURL string
	apiKey  string

	// supportsNormalized is false for archives without per-day totals.
	supportsNormalized bool
}

type newsSearchReq struct {
	Query    string `json:"q"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Limit    int    `json:"limit,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
	Token    string `json:"pagination_token,omitempty"`
}

func (p *newsProvider) Name() string { return p.name }

func (p *newsProvider) searchReq(q model.QueryDescriptor) newsSearchReq {
	return newsSearchReq{
		Query: q.QueryText,
		Start: util.DateToStr(q.StartDate),
		End:   util.DateToStr(q.EndDate),
	}
}

func (p *newsProvider) resolve(q model.QueryDescriptor, path string) (string, map[string]string) {
	base := p.baseURL
	if q.BaseURL != "" {
		base = q.BaseURL
	}
	apiKey := p.apiKey
	if q.APIKey != "" {
		apiKey = q.APIKey
	}

	headers := map[string]string{}
	if apiKey != "" {
		headers["Authorization"] = "Bearer " + apiKey
	}
	return base + path, headers
}

func (p *newsProvider) post(ctx context.Context, q model.QueryDescriptor, path string, body any, out any) error {
	endpoint, headers := p.resolve(q, path)

	respBody, status, err := p.client.Post(ctx, endpoint, body, headers)
	if err != nil {
		return fmt.Errorf("providers.%s: %w", p.name, err)
	}
	if err := p.checkStatus(status, respBody); err != nil {
		return err
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("providers.%s: decode response: %w", p.name, err)
	}
	return nil
}

func (p *newsProvider) checkStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		var detail struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(body, &detail)
		if detail.Detail == "" {
			detail.Detail = "query rejected"
		}
		return NewProviderError(p.name, detail.Detail)
	case status == http.StatusNotImplemented:
		return ErrUnsupportedOperation
	default:
		return fmt.Errorf("providers.%s: unexpected status %d", p.name, status)
	}
}

func (p *newsProvider) Count(ctx context.Context, q model.QueryDescriptor) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := p.post(ctx, q, "/search/count", p.searchReq(q), &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (p *newsProvider) CountOverTime(ctx context.Context, q model.QueryDescriptor) ([]DateCount, error) {
	var out struct {
		Counts []struct {
			Date  string `json:"date"`
			Count int64  `json:"count"`
		} `json:"counts"`
	}
	if err := p.post(ctx, q, "/search/daily-counts", p.searchReq(q), &out); err != nil {
		return nil, err
	}

	counts := make([]DateCount, 0, len(out.Counts))
	for _, c := range out.Counts {
		d, err := util.StrToDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("providers.%s: bad date %q: %w", p.name, c.Date, err)
		}
		counts = append(counts, DateCount{Date: d, Count: c.Count})
	}
	return counts, nil
}

func (p *newsProvider) NormalizedCountOverTime(ctx context.Context, q model.QueryDescriptor) (CountOverTimeResult, error) {
	if !p.supportsNormalized {
		return CountOverTimeResult{}, ErrUnsupportedOperation
	}

	var out struct {
		Counts []struct {
			Date       string `json:"date"`
			Count      int64  `json:"count"`
			TotalCount int64  `json:"total_count"`
		} `json:"counts"`
		Total int64 `json:"total"`
	}
	if err := p.post(ctx, q, "/search/normalized-daily-counts", p.searchReq(q), &out); err != nil {
		return CountOverTimeResult{}, err
	}

	result := CountOverTimeResult{Total: out.Total, Normalized: true}
	for _, c := range out.Counts {
		d, err := util.StrToDate(c.Date)
		if err != nil {
			return CountOverTimeResult{}, fmt.Errorf("providers.%s: bad date %q: %w", p.name, c.Date, err)
		}
		ndc := NormalizedDateCount{Date: d, Count: c.Count, TotalCount: c.TotalCount}
		if c.TotalCount > 0 {
			ndc.Ratio = float64(c.Count) / float64(c.TotalCount)
		}
		result.Counts = append(result.Counts, ndc)
	}
	return result, nil
}

func (p *newsProvider) terms(ctx context.Context, q model.QueryDescriptor, path string, limit int) ([]Term, error) {
	req := p.searchReq(q)
	req.Limit = limit

	var out struct {
		Terms []Term `json:"terms"`
	}
	if err := p.post(ctx, q, path, req, &out); err != nil {
		return nil, err
	}
	return out.Terms, nil
}

func (p *newsProvider) Sources(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error) {
	return p.terms(ctx, q, "/search/top-sources", limit)
}

func (p *newsProvider) Languages(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error) {
	return p.terms(ctx, q, "/search/top-languages", limit)
}

func (p *newsProvider) Words(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error) {
	return p.terms(ctx, q, "/search/top-words", limit)
}

func (p *newsProvider) Sample(ctx context.Context, q model.QueryDescriptor, limit int) ([]Story, error) {
	req := p.searchReq(q)
	req.Limit = limit

	var out struct {
		Stories []Story `json:"stories"`
	}
	if err := p.post(ctx, q, "/search/sample", req, &out); err != nil {
		return nil, err
	}
	return out.Stories, nil
}

func (p *newsProvider) Item(ctx context.Context, q model.QueryDescriptor, itemID string) (Story, error) {
	endpoint, headers := p.resolve(q, "/article/"+url.PathEscape(itemID))

	body, status, err := p.client.Get(ctx, endpoint, headers)
	if err != nil {
		return nil, fmt.Errorf("providers.%s: %w", p.name, err)
	}
	if status == http.StatusNotFound {
		return nil, NewProviderError(p.name, fmt.Sprintf("article %s not found", itemID))
	}
	if err := p.checkStatus(status, body); err != nil {
		return nil, err
	}

	var story Story
	if err := json.Unmarshal(body, &story); err != nil {
		return nil, fmt.Errorf("providers.%s: decode article: %w", p.name, err)
	}
	return story, nil
}

func (p *newsProvider) PagedItems(ctx context.Context, q model.QueryDescriptor, token string) ([]Story, string, error) {
	req := p.searchReq(q)
	req.PageSize = DefaultPageSize
	req.Token = token

	var out struct {
		Stories []Story `json:"stories"`
		Token   string  `json:"pagination_token"`
	}
	if err := p.post(ctx, q, "/search/paged", req, &out); err != nil {
		return nil, "", err
	}
	return out.Stories, out.Token, nil
}

func (p *newsProvider) AllItems(_ context.Context, q model.QueryDescriptor) StoryIterator {
	return newPageIterator(func(ctx context.Context, token string) ([]Story, string, error) {
		return p.PagedItems(ctx, q, token)
	})
}

func newNewsProvider(l log.Logger, client pkgHTTP.IClient, name, baseURL, apiKey string, supportsNormalized bool) *newsProvider {
	return &newsProvider{
		l:                  l,
		client:             client,
		name:               name,
		baseURL:            baseURL,
		apiKey:             apiKey,
		supportsNormalized: supportsNormalized,
	}
}
