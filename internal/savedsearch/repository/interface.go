package repository

import (
	"context"
	"errors"

	"mediasearch-srv/internal/model"
)

// ErrNotFound is returned when no row matches.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, s model.SavedSearch) error
	GetByID(ctx context.Context, userID, id string) (model.SavedSearch, error)
	Update(ctx context.Context, s model.SavedSearch) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]model.SavedSearch, int64, error)
}
