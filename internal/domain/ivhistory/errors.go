package ivhistory

import "errors"

var (
	// ErrDatabaseUpsert wraps write failures
	ErrDatabaseUpsert = errors.New("iv history upsert failed")

	// ErrDatabaseQuery wraps read failures
	ErrDatabaseQuery = errors.New("iv history query failed")
)
