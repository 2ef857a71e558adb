package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/ivhistory"
)

// IVRepository is an in-memory ivhistory.Repository. Used when no
// database is reachable; readings do not survive the process.
type IVRepository struct {
	mu       sync.RWMutex
	readings map[string]map[int64]ivhistory.Reading // symbol -> day unix -> reading
}

// NewIVRepository creates an empty in-memory repository
func NewIVRepository() *IVRepository {
	return &IVRepository{readings: make(map[string]map[int64]ivhistory.Reading)}
}

// Upsert records a reading; the last write for a day wins
func (r *IVRepository) Upsert(_ context.Context, reading ivhistory.Reading) error {
	symbol := strings.ToUpper(reading.Symbol)
	day := ivhistory.Day(reading.Date)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readings[symbol] == nil {
		r.readings[symbol] = make(map[int64]ivhistory.Reading)
	}
	reading.Symbol = symbol
	reading.Date = day
	r.readings[symbol][day.Unix()] = reading
	return nil
}

// History returns readings for a symbol, most recent first
func (r *IVRepository) History(_ context.Context, symbol string, lookbackDays int) ([]ivhistory.Reading, error) {
	if lookbackDays <= 0 {
		lookbackDays = ivhistory.DefaultLookbackDays
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	days := r.readings[strings.ToUpper(symbol)]
	out := make([]ivhistory.Reading, 0, len(days))
	for _, reading := range days {
		out = append(out, reading)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > lookbackDays {
		out = out[:lookbackDays]
	}
	return out, nil
}
