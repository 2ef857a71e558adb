package option

import "errors"

var (
	// ErrTickerNotFound means the quote source does not know the ticker
	ErrTickerNotFound = errors.New("ticker not found")

	// ErrUpstream wraps quote source failures (timeout, 5xx)
	ErrUpstream = errors.New("quote source request failed")
)
