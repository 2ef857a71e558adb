package market

import "errors"

var (
	// ErrHistoryNotFound means the history source does not know the
	// ticker or interval
	ErrHistoryNotFound = errors.New("price history not found")

	// ErrUpstream wraps history source failures
	ErrUpstream = errors.New("history source request failed")
)
