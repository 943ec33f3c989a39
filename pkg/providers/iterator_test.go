package providers

import (
	"context"
	"errors"
	"testing"
)

func TestPageIteratorSkipsEmptyPagesWithToken(t *testing.T) {
	// Page 2 is empty but carries a continuation token; iteration must not
	// stop until the token runs out.
	pages := []struct {
		stories []Story
		next    string
	}{
		{stories: []Story{{"id": "1"}, {"id": "2"}}, next: "t1"},
		{stories: nil, next: "t2"},
		{stories: []Story{{"id": "3"}}, next: ""},
	}

	var calls int
	it := newPageIterator(func(_ context.Context, token string) ([]Story, string, error) {
		wantToken := ""
		if calls > 0 {
			wantToken = pages[calls-1].next
		}
		if token != wantToken {
			t.Errorf("call %d: token = %q, want %q", calls, token, wantToken)
		}
		p := pages[calls]
		calls++
		return p.stories, p.next, nil
	})

	var got []Story
	for it.Next(context.Background()) {
		got = append(got, it.Page()...)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d stories, want 3", len(got))
	}
	if calls != 3 {
		t.Errorf("fetched %d pages, want all 3", calls)
	}
}

func TestPageIteratorEmptyFirstPageEndsCleanly(t *testing.T) {
	it := newPageIterator(func(context.Context, string) ([]Story, string, error) {
		return nil, "", nil
	})
	if it.Next(context.Background()) {
		t.Error("Next = true on an empty result set")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err: %v", err)
	}
}

func TestPageIteratorSurfacesFetchError(t *testing.T) {
	boom := errors.New("backend down")
	it := newPageIterator(func(context.Context, string) ([]Story, string, error) {
		return nil, "", boom
	})
	if it.Next(context.Background()) {
		t.Error("Next = true after fetch error")
	}
	if !errors.Is(it.Err(), boom) {
		t.Errorf("Err = %v, want %v", it.Err(), boom)
	}
}
