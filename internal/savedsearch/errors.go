package savedsearch

import "errors"

var (
	ErrNotFound          = errors.New("saved search not found")
	ErrMissingName       = errors.New("saved search name is required")
	ErrInvalidSerialized = errors.New("serialized query state is not valid")
)
