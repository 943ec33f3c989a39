package quota

import "errors"

var (
	// ErrOverQuota means the user exhausted their window allowance for a
	// provider. Surfaced before any job starts.
	ErrOverQuota = errors.New("provider usage quota exceeded")

	// ErrInvalidWeight means a charge was attempted with weight < 1.
	ErrInvalidWeight = errors.New("charge weight must be at least 1")
)
