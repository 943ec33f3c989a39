package http

import (
	"time"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/savedsearch"
	"mediasearch-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type createReq struct {
	Name        string `json:"name" binding:"required,max=255"`
	SerializedQ string `json:"serialized_query"`
}

func (r createReq) toInput() savedsearch.CreateInput {
	return savedsearch.CreateInput{
		Name:        r.Name,
		SerializedQ: r.SerializedQ,
	}
}

type updateReq struct {
	Name        string `json:"name,omitempty"`
	SerializedQ string `json:"serialized_query,omitempty"`
}

func (r updateReq) toInput(id string) savedsearch.UpdateInput {
	return savedsearch.UpdateInput{
		ID:          id,
		Name:        r.Name,
		SerializedQ: r.SerializedQ,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type savedSearchResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SerializedQ string `json:"serialized_query"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newSavedSearchResp(s model.SavedSearch) savedSearchResp {
	return savedSearchResp{
		ID:          s.ID,
		Name:        s.Name,
		SerializedQ: s.SerializedQ,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

type listResp struct {
	Searches  []savedSearchResp           `json:"searches"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(out savedsearch.ListOutput) listResp {
	resp := listResp{
		Searches:  make([]savedSearchResp, len(out.Searches)),
		Paginator: out.Paginator.ToResponse(),
	}
	for i, s := range out.Searches {
		resp.Searches[i] = newSavedSearchResp(s)
	}
	return resp
}
