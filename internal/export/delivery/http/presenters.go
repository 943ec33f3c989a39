package http

import (
	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/model"
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

type contentExportReq struct {
	Queries []queryReq `json:"queries" binding:"required,min=1"`
}

func (r contentExportReq) toInput() (export.ContentExportInput, error) {
	input := export.ContentExportInput{
		Kind:    model.ExportKindContent,
		Queries: make([]model.QueryDescriptor, 0, len(r.Queries)),
	}
	for _, q := range r.Queries {
		parsed, err := q.toQuery()
		if err != nil {
			return export.ContentExportInput{}, err
		}
		input.Queries = append(input.Queries, parsed)
	}
	return input, nil
}

type emailExportReq struct {
	Queries []queryReq `json:"queries" binding:"required,min=1"`
	Email   string     `json:"email" binding:"required,email"`
}

func (r emailExportReq) toInput() (export.EmailExportInput, error) {
	input := export.EmailExportInput{
		Email:   r.Email,
		Queries: make([]model.QueryDescriptor, 0, len(r.Queries)),
	}
	for _, q := range r.Queries {
		parsed, err := q.toQuery()
		if err != nil {
			return export.EmailExportInput{}, err
		}
		input.Queries = append(input.Queries, parsed)
	}
	return input, nil
}

// =====================================================
// Response DTOs
// =====================================================

type enqueueResp struct {
	JobID string `json:"job_id"`
}
