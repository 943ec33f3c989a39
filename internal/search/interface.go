package search

import (
	"context"

	"mediasearch-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// TotalCount returns the number of matching stories and, where the
	// backend can count its whole collection, the collection total for the
	// same date range. Total is omitted when the everything-query is not
	// supported.
	TotalCount(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (TotalCountOutput, error)

	// CountOverTime returns attention over time, normalized against the
	// collection volume where the backend supports it. Backends without
	// normalization fall back to plain counts, marked as such.
	CountOverTime(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (CountOverTimeOutput, error)

	// Sample returns a small page of matching stories for preview.
	Sample(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (SampleOutput, error)

	// StoryList returns one provider page of matching stories, resuming
	// from the pagination token of the previous page ("" for the first).
	// Expanded story content is restricted to staff.
	StoryList(ctx context.Context, sc model.Scope, q model.QueryDescriptor, paginationToken string) (StoryListOutput, error)

	// StoryDetail returns one story by provider-native ID.
	StoryDetail(ctx context.Context, sc model.Scope, q model.QueryDescriptor, storyID string) (StoryDetailOutput, error)

	// Sources returns the top publishing sources for the query.
	Sources(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (TermsOutput, error)

	// Languages returns the top story languages for the query.
	Languages(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (TermsOutput, error)

	// Words returns the top terms in matching stories, with each count
	// expressed as a ratio of the sampled volume.
	Words(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (TermsOutput, error)
}
