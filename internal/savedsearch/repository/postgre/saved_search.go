package postgre

import (
	"context"
	"database/sql"
	"errors"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/savedsearch/repository"
)

const createQuery = `
	INSERT INTO saved_searches (id, user_id, name, serialized_query, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

func (r *implRepository) Create(ctx context.Context, s model.SavedSearch) error {
	_, err := r.db.ExecContext(ctx, createQuery,
		s.ID, s.UserID, s.Name, s.SerializedQ, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "savedsearch.repository.postgre.Create: Failed to insert: %v", err)
		return err
	}
	return nil
}

const getByIDQuery = `
	SELECT id, user_id, name, serialized_query, created_at, updated_at
	FROM saved_searches
	WHERE user_id = $1 AND id = $2`

func (r *implRepository) GetByID(ctx context.Context, userID, id string) (model.SavedSearch, error) {
	var s model.SavedSearch
	err := r.db.QueryRowContext(ctx, getByIDQuery, userID, id).Scan(
		&s.ID, &s.UserID, &s.Name, &s.SerializedQ, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavedSearch{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "savedsearch.repository.postgre.GetByID: Failed to query: %v", err)
		return model.SavedSearch{}, err
	}
	return s, nil
}

const updateQuery = `
	UPDATE saved_searches
	SET name = $3, serialized_query = $4, updated_at = $5
	WHERE user_id = $1 AND id = $2`

func (r *implRepository) Update(ctx context.Context, s model.SavedSearch) error {
	result, err := r.db.ExecContext(ctx, updateQuery,
		s.UserID, s.ID, s.Name, s.SerializedQ, s.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "savedsearch.repository.postgre.Update: Failed to update: %v", err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

const deleteQuery = `DELETE FROM saved_searches WHERE user_id = $1 AND id = $2`

func (r *implRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, deleteQuery, userID, id)
	if err != nil {
		r.l.Errorf(ctx, "savedsearch.repository.postgre.Delete: Failed to delete: %v", err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

const listByUserQuery = `
	SELECT id, user_id, name, serialized_query, created_at, updated_at
	FROM saved_searches
	WHERE user_id = $1
	ORDER BY updated_at DESC
	LIMIT $2 OFFSET $3`

const countByUserQuery = `SELECT COUNT(*) FROM saved_searches WHERE user_id = $1`

func (r *implRepository) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]model.SavedSearch, int64, error) {
	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID, limit, offset)
	if err != nil {
		r.l.Errorf(ctx, "savedsearch.repository.postgre.ListByUser: Failed to query: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var searches []model.SavedSearch
	for rows.Next() {
		var s model.SavedSearch
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.SerializedQ, &s.CreatedAt, &s.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "savedsearch.repository.postgre.ListByUser: Failed to scan: %v", err)
			return nil, 0, err
		}
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countByUserQuery, userID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "savedsearch.repository.postgre.ListByUser: Failed to count: %v", err)
		return nil, 0, err
	}

	return searches, total, nil
}
