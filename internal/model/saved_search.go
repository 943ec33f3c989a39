package model

import "time"

// SavedSearch is a persisted, named query state owned by a user. The
// serialized state is the URL query string of the search UI; it is re-parsed
// into QueryDescriptors when the search is run again.
type SavedSearch struct {
	ID          string
	UserID      string
	Name        string
	SerializedQ string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
