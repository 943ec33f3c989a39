package postgre

import (
	"context"

	"mediasearch-srv/internal/model"
)

const insertChargeQuery = `
	INSERT INTO quota_charges (id, user_id, is_staff, provider, operation, weight, charged_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING`

// Insert stores one charge event. Duplicate event IDs are ignored so the
// audit consumer can replay safely.
func (r *implRepository) Insert(ctx context.Context, event model.QuotaChargeEvent) error {
	_, err := r.db.ExecContext(ctx, insertChargeQuery,
		event.ID, event.UserID, event.IsStaff, event.Provider,
		event.Operation, event.Weight, event.ChargedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "quota.repository.postgre.Insert: Failed to insert charge: %v", err)
		return err
	}
	return nil
}

const listByUserQuery = `
	SELECT id, user_id, is_staff, provider, operation, weight, charged_at
	FROM quota_charges
	WHERE user_id = $1
	ORDER BY charged_at DESC
	LIMIT $2 OFFSET $3`

const countByUserQuery = `SELECT COUNT(*) FROM quota_charges WHERE user_id = $1`

// ListByUser returns a page of charge history, newest first, plus the total.
func (r *implRepository) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]model.QuotaChargeEvent, int64, error) {
	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID, limit, offset)
	if err != nil {
		r.l.Errorf(ctx, "quota.repository.postgre.ListByUser: Failed to query charges: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var events []model.QuotaChargeEvent
	for rows.Next() {
		var e model.QuotaChargeEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.IsStaff, &e.Provider, &e.Operation, &e.Weight, &e.ChargedAt); err != nil {
			r.l.Errorf(ctx, "quota.repository.postgre.ListByUser: Failed to scan charge: %v", err)
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countByUserQuery, userID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "quota.repository.postgre.ListByUser: Failed to count charges: %v", err)
		return nil, 0, err
	}

	return events, total, nil
}
