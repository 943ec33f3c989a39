package search

import (
	"mediasearch-srv/pkg/providers"
)

// TotalCountOutput - matching volume plus optional collection volume
type TotalCountOutput struct {
	Relevant int64
	// Total is nil when the backend cannot run an everything-query.
	Total *int64
}

// CountOverTimeOutput - attention series for one query
type CountOverTimeOutput struct {
	Counts []providers.NormalizedDateCount
	Total  int64
	// Normalized is false when the backend only produced plain counts.
	Normalized bool
}

// SampleOutput - preview page
type SampleOutput struct {
	Stories []providers.Story
}

// StoryListOutput - one provider page plus the cursor for the next
type StoryListOutput struct {
	Stories []providers.Story
	// PaginationToken is empty when the result set is exhausted.
	PaginationToken string
}

// StoryDetailOutput - one story
type StoryDetailOutput struct {
	Story providers.Story
}

// TermsOutput - aggregation buckets (sources, languages or words)
type TermsOutput struct {
	Terms []providers.Term
}
