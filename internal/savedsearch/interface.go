package savedsearch

import (
	"context"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create stores a named query set for the calling user.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.SavedSearch, error)

	// Get returns one saved search owned by the calling user.
	Get(ctx context.Context, sc model.Scope, id string) (model.SavedSearch, error)

	// Update renames a saved search or replaces its serialized query state.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.SavedSearch, error)

	// Delete removes a saved search owned by the calling user.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// List returns the calling user's saved searches, newest first.
	List(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) (ListOutput, error)

	// Queries re-parses the serialized query state of one saved search.
	Queries(ctx context.Context, sc model.Scope, id string) ([]model.QueryDescriptor, error)
}
