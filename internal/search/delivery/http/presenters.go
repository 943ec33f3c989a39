package http

import (
	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/search"
	"mediasearch-srv/pkg/providers"
	"mediasearch-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type queryReq struct {
	Provider       string         `json:"provider" binding:"required"`
	Query          string         `json:"query" binding:"required"`
	Start          string         `json:"start" binding:"required"`
	End            string         `json:"end" binding:"required"`
	Options        map[string]any `json:"options,omitempty"`
	APIKey         string         `json:"api_key,omitempty"`
	BaseURL        string         `json:"base_url,omitempty"`
	CachingEnabled bool           `json:"caching_enabled,omitempty"`
}

func (r queryReq) toQuery() (model.QueryDescriptor, error) {
	start, err := util.ParseFlexibleDate(r.Start)
	if err != nil {
		return model.QueryDescriptor{}, err
	}
	end, err := util.ParseFlexibleDate(r.End)
	if err != nil {
		return model.QueryDescriptor{}, err
	}
	return model.QueryDescriptor{
		ProviderName:    r.Provider,
		QueryText:       r.Query,
		StartDate:       start,
		EndDate:         end,
		ProviderOptions: r.Options,
		APIKey:          r.APIKey,
		BaseURL:         r.BaseURL,
		CachingEnabled:  r.CachingEnabled,
	}, nil
}

type storyDetailReq struct {
	queryReq
	StoryID string `json:"story_id" binding:"required"`
}

type storyListReq struct {
	queryReq
	PaginationToken string `json:"pagination_token,omitempty"`
}

// =====================================================
// Response DTOs
// =====================================================

type totalCountResp struct {
	Relevant int64  `json:"relevant"`
	Total    *int64 `json:"total,omitempty"`
}

func newTotalCountResp(out search.TotalCountOutput) totalCountResp {
	return totalCountResp{Relevant: out.Relevant, Total: out.Total}
}

type dateCountResp struct {
	Date       string  `json:"date"`
	Count      int64   `json:"count"`
	TotalCount int64   `json:"total_count,omitempty"`
	Ratio      float64 `json:"ratio,omitempty"`
}

type countOverTimeResp struct {
	Counts     []dateCountResp `json:"counts"`
	Total      int64           `json:"total"`
	Normalized bool            `json:"normalized"`
}

func newCountOverTimeResp(out search.CountOverTimeOutput) countOverTimeResp {
	resp := countOverTimeResp{
		Counts:     make([]dateCountResp, len(out.Counts)),
		Total:      out.Total,
		Normalized: out.Normalized,
	}
	for i, dc := range out.Counts {
		resp.Counts[i] = dateCountResp{
			Date:       util.DateToStr(dc.Date),
			Count:      dc.Count,
			TotalCount: dc.TotalCount,
			Ratio:      dc.Ratio,
		}
	}
	return resp
}

type sampleResp struct {
	Stories []providers.Story `json:"stories"`
}

type storyDetailResp struct {
	Story providers.Story `json:"story"`
}

type storyListResp struct {
	Stories         []providers.Story `json:"stories"`
	PaginationToken string            `json:"pagination_token,omitempty"`
}

type termResp struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Ratio float64 `json:"ratio,omitempty"`
}

type termsResp struct {
	Terms []termResp `json:"terms"`
}

func newTermsResp(out search.TermsOutput) termsResp {
	resp := termsResp{Terms: make([]termResp, len(out.Terms))}
	for i, t := range out.Terms {
		resp.Terms[i] = termResp{Name: t.Name, Count: t.Count, Ratio: t.Ratio}
	}
	return resp
}
