package search

import "errors"

var (
	ErrMissingQueryText  = errors.New("query text is required")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrStoryNotFound     = errors.New("story not found")
	ErrExpandedStaffOnly = errors.New("expanded stories are restricted to staff")
)
