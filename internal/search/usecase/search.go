package usecase

import (
	"context"
	"errors"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/search"
	"mediasearch-srv/pkg/providers"
)

// everythingQuery matches the whole collection for the same date range.
const everythingQuery = "*"

func validateQuery(q model.QueryDescriptor) error {
	if q.QueryText == "" {
		return search.ErrMissingQueryText
	}
	if !q.StartDate.IsZero() && !q.EndDate.IsZero() && q.StartDate.After(q.EndDate) {
		return search.ErrInvalidDateRange
	}
	return nil
}

// begin runs the shared admission path of every single-shot operation.
func (uc *implUseCase) begin(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (providers.ContentProvider, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	if err := uc.quotaUC.CheckAdmission(ctx, sc, q.ProviderName); err != nil {
		return nil, err
	}
	return uc.resolver.Resolve(q)
}

func (uc *implUseCase) charge(ctx context.Context, sc model.Scope, provider, operation string) {
	if err := uc.quotaUC.Charge(ctx, sc, provider, operation, weightFor(operation)); err != nil {
		// The operation already succeeded; losing one charge is logged,
		// not surfaced to the caller.
		uc.l.Warnf(ctx, "search.usecase.charge: charge %s/%s for user %s failed: %v", provider, operation, sc.UserID, err)
	}
}

func (uc *implUseCase) TotalCount(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (search.TotalCountOutput, error) {
	provider, err := uc.begin(ctx, sc, q)
	if err != nil {
		return search.TotalCountOutput{}, err
	}

	relevant, err := provider.Count(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.TotalCount: count on %s failed: %v", q.ProviderName, err)
		return search.TotalCountOutput{}, err
	}

	out := search.TotalCountOutput{Relevant: relevant}
	total, err := provider.Count(ctx, q.WithQueryText(everythingQuery))
	switch {
	case err == nil:
		out.Total = &total
	case errors.Is(err, providers.ErrUnsupportedOperation):
		// Collection volume stays unknown for this backend.
	default:
		uc.l.Errorf(ctx, "search.usecase.TotalCount: everything count on %s failed: %v", q.ProviderName, err)
		return search.TotalCountOutput{}, err
	}

	uc.charge(ctx, sc, q.ProviderName, opCount)
	return out, nil
}

func (uc *implUseCase) CountOverTime(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (search.CountOverTimeOutput, error) {
	provider, err := uc.begin(ctx, sc, q)
	if err != nil {
		return search.CountOverTimeOutput{}, err
	}

	result, err := provider.NormalizedCountOverTime(ctx, q)
	if err == nil {
		uc.charge(ctx, sc, q.ProviderName, opCountOverTime)
		return search.CountOverTimeOutput{
			Counts:     result.Counts,
			Total:      result.Total,
			Normalized: true,
		}, nil
	}
	if !errors.Is(err, providers.ErrUnsupportedOperation) {
		uc.l.Errorf(ctx, "search.usecase.CountOverTime: normalized counts on %s failed: %v", q.ProviderName, err)
		return search.CountOverTimeOutput{}, err
	}

	// Backend cannot normalize: fall back to plain counts and say so.
	counts, err := provider.CountOverTime(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.CountOverTime: plain counts on %s failed: %v", q.ProviderName, err)
		return search.CountOverTimeOutput{}, err
	}

	out := search.CountOverTimeOutput{Normalized: false}
	out.Counts = make([]providers.NormalizedDateCount, len(counts))
	for i, dc := range counts {
		out.Counts[i] = providers.NormalizedDateCount{Date: dc.Date, Count: dc.Count}
		out.Total += dc.Count
	}

	uc.charge(ctx, sc, q.ProviderName, opCountOverTime)
	return out, nil
}

func (uc *implUseCase) Sample(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (search.SampleOutput, error) {
	provider, err := uc.begin(ctx, sc, q)
	if err != nil {
		return search.SampleOutput{}, err
	}

	stories, err := provider.Sample(ctx, q, uc.cfg.SampleSize)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Sample: sample on %s failed: %v", q.ProviderName, err)
		return search.SampleOutput{}, err
	}

	uc.charge(ctx, sc, q.ProviderName, opSample)
	return search.SampleOutput{Stories: stories}, nil
}

// wantsExpanded reports whether the query opts into expanded story
// content. The option arrives as a bool or as the strings "1"/"true"
// depending on the client.
func wantsExpanded(q model.QueryDescriptor) bool {
	switch v := q.ProviderOptions["expanded"].(type) {
	case bool:
		return v
	case string:
		return v == "1" || v == "true"
	default:
		return false
	}
}

func (uc *implUseCase) StoryList(ctx context.Context, sc model.Scope, q model.QueryDescriptor, paginationToken string) (search.StoryListOutput, error) {
	if wantsExpanded(q) && !sc.IsStaff {
		return search.StoryListOutput{}, search.ErrExpandedStaffOnly
	}

	provider, err := uc.begin(ctx, sc, q)
	if err != nil {
		return search.StoryListOutput{}, err
	}

	stories, next, err := provider.PagedItems(ctx, q, paginationToken)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.StoryList: paged items on %s failed: %v", q.ProviderName, err)
		return search.StoryListOutput{}, err
	}

	uc.charge(ctx, sc, q.ProviderName, opStoryList)
	return search.StoryListOutput{Stories: stories, PaginationToken: next}, nil
}

func (uc *implUseCase) StoryDetail(ctx context.Context, sc model.Scope, q model.QueryDescriptor, storyID string) (search.StoryDetailOutput, error) {
	provider, err := uc.begin(ctx, sc, q)
	if err != nil {
		return search.StoryDetailOutput{}, err
	}

	story, err := provider.Item(ctx, q, storyID)
	if err != nil {
		var provErr *providers.ProviderError
		if errors.As(err, &provErr) {
			// Item lookups only get rejected for unknown IDs.
			return search.StoryDetailOutput{}, search.ErrStoryNotFound
		}
		uc.l.Errorf(ctx, "search.usecase.StoryDetail: item %s on %s failed: %v", storyID, q.ProviderName, err)
		return search.StoryDetailOutput{}, err
	}

	uc.charge(ctx, sc, q.ProviderName, opItem)
	return search.StoryDetailOutput{Story: story}, nil
}

func (uc *implUseCase) Sources(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (search.TermsOutput, error) {
	return uc.terms(ctx, sc, q, opSources, providers.ContentProvider.Sources)
}

func (uc *implUseCase) Languages(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (search.TermsOutput, error) {
	return uc.terms(ctx, sc, q, opLanguages, providers.ContentProvider.Languages)
}

func (uc *implUseCase) Words(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (search.TermsOutput, error) {
	out, err := uc.terms(ctx, sc, q, opWords, providers.ContentProvider.Words)
	if err != nil {
		return search.TermsOutput{}, err
	}
	// Word counts come from a fixed sample of 1000 stories; expose each
	// count as a ratio of that sample.
	for i := range out.Terms {
		out.Terms[i].Ratio = float64(out.Terms[i].Count) / 1000
	}
	return out, nil
}

type termsFunc func(providers.ContentProvider, context.Context, model.QueryDescriptor, int) ([]providers.Term, error)

func (uc *implUseCase) terms(ctx context.Context, sc model.Scope, q model.QueryDescriptor, operation string, fetch termsFunc) (search.TermsOutput, error) {
	provider, err := uc.begin(ctx, sc, q)
	if err != nil {
		return search.TermsOutput{}, err
	}

	terms, err := fetch(provider, ctx, q, uc.cfg.TermsLimit)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.terms: %s on %s failed: %v", operation, q.ProviderName, err)
		return search.TermsOutput{}, err
	}

	uc.charge(ctx, sc, q.ProviderName, operation)
	return search.TermsOutput{Terms: terms}, nil
}
