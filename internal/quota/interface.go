package quota

import (
	"context"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Charge records one unit of metered usage: exactly one call per
	// provider page pulled, with the operation's weight. The counter write
	// is mandatory; the history event publish is best-effort.
	Charge(ctx context.Context, sc model.Scope, provider, operation string, weight int64) error

	// CheckAdmission rejects with ErrOverQuota when the user's current
	// window counter has reached the configured limit.
	CheckAdmission(ctx context.Context, sc model.Scope, provider string) error

	// Usage returns the current window consumption for display.
	Usage(ctx context.Context, sc model.Scope, provider string) (model.QuotaUsage, error)

	// RecordHistory persists a charge event from the audit stream.
	RecordHistory(ctx context.Context, event model.QuotaChargeEvent) error

	// History returns the user's persisted charge events, newest first.
	History(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) (HistoryOutput, error)
}

// HistoryOutput - one page of charge events
type HistoryOutput struct {
	Events    []model.QuotaChargeEvent
	Paginator paginator.Paginator
}

// Producer publishes charge events to the audit stream.
type Producer interface {
	PublishChargeRecorded(ctx context.Context, event model.QuotaChargeEvent) error
}
