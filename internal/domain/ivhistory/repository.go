package ivhistory

import "context"

// Repository persists daily IV readings keyed by (symbol, date)
type Repository interface {
	// Upsert records a reading, replacing any earlier write for the
	// same symbol and day
	Upsert(ctx context.Context, reading Reading) error

	// History returns readings for a symbol ordered most-recent-first,
	// capped at lookbackDays entries
	History(ctx context.Context, symbol string, lookbackDays int) ([]Reading, error)
}
