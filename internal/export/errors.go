package export

import "errors"

var (
	// ErrNoQueries means an export was requested with an empty query set.
	ErrNoQueries = errors.New("export requires at least one query")

	// ErrTooFewStories means the matching volume is under the email-export
	// minimum; a direct download serves small result sets.
	ErrTooFewStories = errors.New("result set too small for email export, use direct download")

	// ErrTooManyStories means the matching volume exceeds the email-export
	// maximum.
	ErrTooManyStories = errors.New("result set too large for email export, narrow the query")

	// ErrMissingEmail means an email export has no recipient.
	ErrMissingEmail = errors.New("email export requires a recipient address")
)
