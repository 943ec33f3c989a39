package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/savedsearch"
	"mediasearch-srv/internal/savedsearch/repository"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/paginator"
)

type fakeRepo struct {
	searches map[string]model.SavedSearch
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{searches: map[string]model.SavedSearch{}}
}

func (f *fakeRepo) Create(_ context.Context, s model.SavedSearch) error {
	f.searches[s.ID] = s
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, userID, id string) (model.SavedSearch, error) {
	s, ok := f.searches[id]
	if !ok || s.UserID != userID {
		return model.SavedSearch{}, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) Update(_ context.Context, s model.SavedSearch) error {
	existing, ok := f.searches[s.ID]
	if !ok || existing.UserID != s.UserID {
		return repository.ErrNotFound
	}
	f.searches[s.ID] = s
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, userID, id string) error {
	s, ok := f.searches[id]
	if !ok || s.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.searches, id)
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string, limit, offset int64) ([]model.SavedSearch, int64, error) {
	var all []model.SavedSearch
	for _, s := range f.searches {
		if s.UserID == userID {
			all = append(all, s)
		}
	}
	total := int64(len(all))
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func testUC(repo *fakeRepo) savedsearch.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug"})
	return New(repo, l)
}

const serializedOne = `[{"provider":"onlinenews-mediacloud","query":"climate","start":"2024-01-01","end":"2024-01-31"}]`

func TestCreateAndGet(t *testing.T) {
	repo := newFakeRepo()
	uc := testUC(repo)
	sc := model.Scope{UserID: "u1"}

	created, err := uc.Create(context.Background(), sc, savedsearch.CreateInput{
		Name:        "Climate coverage",
		SerializedQ: serializedOne,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.UserID != "u1" {
		t.Fatalf("created = %+v", created)
	}

	got, err := uc.Get(context.Background(), sc, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Climate coverage" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestCreateValidation(t *testing.T) {
	uc := testUC(newFakeRepo())
	sc := model.Scope{UserID: "u1"}

	t.Run("missing name", func(t *testing.T) {
		_, err := uc.Create(context.Background(), sc, savedsearch.CreateInput{SerializedQ: serializedOne})
		if !errors.Is(err, savedsearch.ErrMissingName) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("malformed state", func(t *testing.T) {
		_, err := uc.Create(context.Background(), sc, savedsearch.CreateInput{
			Name:        "broken",
			SerializedQ: "{not json",
		})
		if !errors.Is(err, savedsearch.ErrInvalidSerialized) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestOwnershipIsolation(t *testing.T) {
	repo := newFakeRepo()
	uc := testUC(repo)

	created, err := uc.Create(context.Background(), model.Scope{UserID: "u1"}, savedsearch.CreateInput{
		Name:        "mine",
		SerializedQ: serializedOne,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := model.Scope{UserID: "u2"}
	if _, err := uc.Get(context.Background(), other, created.ID); !errors.Is(err, savedsearch.ErrNotFound) {
		t.Errorf("Get by other user: err = %v, want ErrNotFound", err)
	}
	if err := uc.Delete(context.Background(), other, created.ID); !errors.Is(err, savedsearch.ErrNotFound) {
		t.Errorf("Delete by other user: err = %v, want ErrNotFound", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeRepo()
	uc := testUC(repo)
	sc := model.Scope{UserID: "u1"}

	created, err := uc.Create(context.Background(), sc, savedsearch.CreateInput{
		Name:        "old name",
		SerializedQ: serializedOne,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := uc.Update(context.Background(), sc, savedsearch.UpdateInput{
		ID:   created.ID,
		Name: "new name",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "new name" {
		t.Errorf("name = %q", updated.Name)
	}
	if updated.SerializedQ != serializedOne {
		t.Error("empty update field must keep the stored state")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("updated_at went backwards")
	}
}

func TestListPagination(t *testing.T) {
	repo := newFakeRepo()
	uc := testUC(repo)
	sc := model.Scope{UserID: "u1"}

	for i := 0; i < 5; i++ {
		_, err := uc.Create(context.Background(), sc, savedsearch.CreateInput{
			Name:        "search",
			SerializedQ: serializedOne,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	out, err := uc.List(context.Background(), sc, paginator.PaginateQuery{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Searches) != 2 || out.Paginator.Total != 5 {
		t.Errorf("got %d searches, total %d", len(out.Searches), out.Paginator.Total)
	}
	if out.Paginator.TotalPages() != 3 {
		t.Errorf("total pages = %d", out.Paginator.TotalPages())
	}
}

func TestQueriesReparse(t *testing.T) {
	repo := newFakeRepo()
	uc := testUC(repo)
	sc := model.Scope{UserID: "u1"}

	created, err := uc.Create(context.Background(), sc, savedsearch.CreateInput{
		Name:        "Climate coverage",
		SerializedQ: serializedOne,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	queries, err := uc.Queries(context.Background(), sc, created.ID)
	if err != nil {
		t.Fatalf("Queries: %v", err)
	}
	if len(queries) != 1 {
		t.Fatalf("got %d queries", len(queries))
	}
	q := queries[0]
	if q.ProviderName != "onlinenews-mediacloud" || q.QueryText != "climate" {
		t.Errorf("query = %+v", q)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, q.StartDate.Location())
	if !q.StartDate.Equal(want) {
		t.Errorf("start = %v", q.StartDate)
	}
}
