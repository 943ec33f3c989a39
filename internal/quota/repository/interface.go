package repository

import (
	"context"
	"time"

	"mediasearch-srv/internal/model"
)

// CounterRepository is the windowed admission counter. Increments must be
// atomic: concurrent jobs for the same user race on the same key.
type CounterRepository interface {
	// Increment adds weight to the user's counter for the given window and
	// returns the new value. The key expires after the window passes.
	Increment(ctx context.Context, userID, provider, window string, weight int64, ttl time.Duration) (int64, error)
	// Current returns the counter value, zero when absent.
	Current(ctx context.Context, userID, provider, window string) (int64, error)
}

// HistoryRepository is the durable audit trail of charge events.
type HistoryRepository interface {
	Insert(ctx context.Context, event model.QuotaChargeEvent) error
	ListByUser(ctx context.Context, userID string, limit int64, offset int64) ([]model.QuotaChargeEvent, int64, error)
}
