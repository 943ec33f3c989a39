package providers

import "context"

// fetchPageFunc fetches one page given the pagination token of the previous
// page ("" for the first). It returns the page, the token for the next page
// ("" when exhausted), and an error.
type fetchPageFunc func(ctx context.Context, token string) ([]Story, string, error)

// pageIterator implements StoryIterator over a token-paginated endpoint.
type pageIterator struct {
	fetch fetchPageFunc
	token string
	page  []Story
	err   error
	done  bool
}

func newPageIterator(fetch fetchPageFunc) *pageIterator {
	return &pageIterator{fetch: fetch}
}

func (it *pageIterator) Next(ctx context.Context) bool {
	for {
		if it.done || it.err != nil {
			return false
		}
		if err := ctx.Err(); err != nil {
			it.err = err
			return false
		}

		page, next, err := it.fetch(ctx, it.token)
		if err != nil {
			it.err = err
			return false
		}
		it.page = page
		it.token = next
		if next == "" {
			it.done = true
		}
		if len(page) > 0 {
			return true
		}
		// An empty page with a continuation token is a gap in the result
		// set, not the end of it. Keep walking.
	}
}

func (it *pageIterator) Page() []Story {
	return it.page
}

func (it *pageIterator) Err() error {
	return it.err
}

// errIterator is an iterator that fails immediately, used when a traversal
// cannot even start.
type errIterator struct {
	err error
}

func (it *errIterator) Next(context.Context) bool { return false }
func (it *errIterator) Page() []Story             { return nil }
func (it *errIterator) Err() error                { return it.err }
