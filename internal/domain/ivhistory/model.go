package ivhistory

import "time"

// DefaultLookbackDays is one trading year of daily readings
const DefaultLookbackDays = 252

// Reading is one symbol's IV30 observation for a calendar day.
// At most one reading exists per (symbol, date); later writes on the
// same day replace earlier ones.
type Reading struct {
	Symbol string    `json:"symbol"`
	Date   time.Time `json:"date"` // calendar day, UTC midnight
	IV30   float64   `json:"iv30"`
	Price  float64   `json:"price"`
}

// Day normalizes a timestamp to the calendar day used as the upsert key
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
