package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/savedsearch"
	"mediasearch-srv/internal/savedsearch/repository"
	"mediasearch-srv/pkg/paginator"
)

func validateSerialized(serialized string) error {
	if serialized == "" {
		return nil
	}
	// Stored state must at least be a JSON array; full parsing happens
	// when the search is used.
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(serialized), &raw); err != nil {
		return savedsearch.ErrInvalidSerialized
	}
	return nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input savedsearch.CreateInput) (model.SavedSearch, error) {
	if input.Name == "" {
		return model.SavedSearch{}, savedsearch.ErrMissingName
	}
	if err := validateSerialized(input.SerializedQ); err != nil {
		return model.SavedSearch{}, err
	}

	now := uc.now()
	s := model.SavedSearch{
		ID:          uuid.New().String(),
		UserID:      sc.UserID,
		Name:        input.Name,
		SerializedQ: input.SerializedQ,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		uc.l.Errorf(ctx, "savedsearch.usecase.Create: Failed to create: %v", err)
		return model.SavedSearch{}, err
	}
	return s, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.SavedSearch, error) {
	s, err := uc.repo.GetByID(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.SavedSearch{}, savedsearch.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "savedsearch.usecase.Get: Failed to get %s: %v", id, err)
		return model.SavedSearch{}, err
	}
	return s, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input savedsearch.UpdateInput) (model.SavedSearch, error) {
	if err := validateSerialized(input.SerializedQ); err != nil {
		return model.SavedSearch{}, err
	}

	s, err := uc.Get(ctx, sc, input.ID)
	if err != nil {
		return model.SavedSearch{}, err
	}

	if input.Name != "" {
		s.Name = input.Name
	}
	if input.SerializedQ != "" {
		s.SerializedQ = input.SerializedQ
	}
	s.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, s); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.SavedSearch{}, savedsearch.ErrNotFound
		}
		uc.l.Errorf(ctx, "savedsearch.usecase.Update: Failed to update %s: %v", input.ID, err)
		return model.SavedSearch{}, err
	}
	return s, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.Delete(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return savedsearch.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "savedsearch.usecase.Delete: Failed to delete %s: %v", id, err)
	}
	return err
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) (savedsearch.ListOutput, error) {
	pq.Adjust()

	searches, total, err := uc.repo.ListByUser(ctx, sc.UserID, pq.Limit, pq.Offset())
	if err != nil {
		uc.l.Errorf(ctx, "savedsearch.usecase.List: Failed to list: %v", err)
		return savedsearch.ListOutput{}, err
	}

	return savedsearch.ListOutput{
		Searches: searches,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(searches)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

func (uc *implUseCase) Queries(ctx context.Context, sc model.Scope, id string) ([]model.QueryDescriptor, error) {
	s, err := uc.Get(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return savedsearch.ParseQueries(s.SerializedQ)
}
