package savedsearch

import (
	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/paginator"
)

// CreateInput - new saved search
type CreateInput struct {
	Name        string
	SerializedQ string
}

// UpdateInput - partial update; empty fields keep their stored value
type UpdateInput struct {
	ID          string
	Name        string
	SerializedQ string
}

// ListOutput - one page of saved searches
type ListOutput struct {
	Searches  []model.SavedSearch
	Paginator paginator.Paginator
}
