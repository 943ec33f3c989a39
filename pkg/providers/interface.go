package providers

import (
	"context"

	"mediasearch-srv/internal/model"
)

// ContentProvider is a search backend for one content archive. Single-shot
// operations return aggregates for a whole query; AllItems returns a lazy
// iterator over every matching story, one provider page at a time.
//
// Operations a backend cannot answer return ErrUnsupportedOperation.
// Query-level rejections (bad syntax, bad field) come back as *ProviderError.
type ContentProvider interface {
	Name() string

	Count(ctx context.Context, q model.QueryDescriptor) (int64, error)
	CountOverTime(ctx context.Context, q model.QueryDescriptor) ([]DateCount, error)
	NormalizedCountOverTime(ctx context.Context, q model.QueryDescriptor) (CountOverTimeResult, error)
	Sources(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error)
	Languages(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error)
	Words(ctx context.Context, q model.QueryDescriptor, limit int) ([]Term, error)
	Sample(ctx context.Context, q model.QueryDescriptor, limit int) ([]Story, error)
	Item(ctx context.Context, q model.QueryDescriptor, itemID string) (Story, error)

	// PagedItems fetches one result page, resuming from the pagination
	// token of the previous page ("" for the first). It returns the page
	// and the token for the next one ("" when exhausted).
	PagedItems(ctx context.Context, q model.QueryDescriptor, token string) ([]Story, string, error)

	// AllItems returns a fresh iterator positioned before the first page.
	// Restarting a traversal means calling AllItems again.
	AllItems(ctx context.Context, q model.QueryDescriptor) StoryIterator
}

// StoryIterator walks provider result pages in the scanner style:
//
//	it := p.AllItems(ctx, q)
//	for it.Next(ctx) {
//		page := it.Page()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type StoryIterator interface {
	// Next fetches the next page. It returns false when the result set is
	// exhausted or an error occurred; Err distinguishes the two.
	Next(ctx context.Context) bool
	// Page returns the most recently fetched page.
	Page() []Story
	// Err returns the first error encountered, if any.
	Err() error
}
