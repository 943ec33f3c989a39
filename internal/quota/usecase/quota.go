package usecase

import (
	"context"

	"github.com/google/uuid"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/quota"
	"mediasearch-srv/pkg/paginator"
)

// window returns the identifier of the admission window containing now.
func (uc *implUseCase) window() string {
	start := uc.now().Truncate(uc.cfg.Window)
	return start.UTC().Format("20060102150405")
}

func (uc *implUseCase) limitFor(sc model.Scope) int64 {
	limit := uc.cfg.DefaultLimit
	if sc.IsStaff {
		limit *= uc.cfg.StaffMultiplier
	}
	return limit
}

// Charge increments the admission counter and emits one audit event. The
// counter write is the source of truth: if it fails, the job must stop. The
// audit publish is best-effort and only logged on failure.
func (uc *implUseCase) Charge(ctx context.Context, sc model.Scope, provider, operation string, weight int64) error {
	if weight < 1 {
		return quota.ErrInvalidWeight
	}

	window := uc.window()
	if _, err := uc.counterRepo.Increment(ctx, sc.UserID, provider, window, weight, 2*uc.cfg.Window); err != nil {
		uc.l.Errorf(ctx, "quota.usecase.Charge: counter increment failed: %v", err)
		return err
	}

	event := model.QuotaChargeEvent{
		ID:        uuid.New().String(),
		UserID:    sc.UserID,
		IsStaff:   sc.IsStaff,
		Provider:  provider,
		Operation: operation,
		Weight:    weight,
		ChargedAt: uc.now(),
	}
	if uc.producer != nil {
		if err := uc.producer.PublishChargeRecorded(ctx, event); err != nil {
			uc.l.Warnf(ctx, "quota.usecase.Charge: audit publish failed (continuing): %v", err)
		}
	}

	return nil
}

// CheckAdmission compares the current window counter against the limit.
// Staff bypass when configured exempt; their usage is still recorded by
// Charge.
func (uc *implUseCase) CheckAdmission(ctx context.Context, sc model.Scope, provider string) error {
	if sc.IsStaff && uc.cfg.StaffExempt {
		return nil
	}

	current, err := uc.counterRepo.Current(ctx, sc.UserID, provider, uc.window())
	if err != nil {
		uc.l.Errorf(ctx, "quota.usecase.CheckAdmission: counter read failed: %v", err)
		return err
	}
	if current >= uc.limitFor(sc) {
		return quota.ErrOverQuota
	}
	return nil
}

// Usage returns the current window consumption.
func (uc *implUseCase) Usage(ctx context.Context, sc model.Scope, provider string) (model.QuotaUsage, error) {
	window := uc.window()
	current, err := uc.counterRepo.Current(ctx, sc.UserID, provider, window)
	if err != nil {
		return model.QuotaUsage{}, err
	}
	return model.QuotaUsage{
		UserID:   sc.UserID,
		Provider: provider,
		Window:   window,
		Used:     current,
		Limit:    uc.limitFor(sc),
	}, nil
}

// RecordHistory persists one audit event, called from the Kafka consumer.
func (uc *implUseCase) RecordHistory(ctx context.Context, event model.QuotaChargeEvent) error {
	return uc.historyRepo.Insert(ctx, event)
}

// History returns a page of persisted charge events for the user.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) (quota.HistoryOutput, error) {
	pq.Adjust()

	events, total, err := uc.historyRepo.ListByUser(ctx, sc.UserID, pq.Limit, pq.Offset())
	if err != nil {
		uc.l.Errorf(ctx, "quota.usecase.History: list failed: %v", err)
		return quota.HistoryOutput{}, err
	}

	return quota.HistoryOutput{
		Events: events,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(events)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}
