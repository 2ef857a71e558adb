package ivrank

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/ivhistory"
)

// Context is the rank/percentile reading for a symbol's current IV.
// Rank and Percentile stay nil until at least two daily readings exist.
type Context struct {
	Rank        *float64 `json:"iv_rank"`
	Percentile  *float64 `json:"iv_percentile"`
	HistoryDays int      `json:"iv_history_days"`
}

// Service records daily IV30 readings and derives rank statistics
// against the trailing history
type Service struct {
	repo  ivhistory.Repository
	clock func() time.Time
}

// NewService creates the IV rank service. A nil clock uses time.Now.
func NewService(repo ivhistory.Repository, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, clock: clock}
}

// Record upserts today's IV30 reading for a symbol. Idempotent within
// a calendar day: the last write wins.
func (s *Service) Record(ctx context.Context, symbol string, iv30, price float64) error {
	reading := ivhistory.Reading{
		Symbol: strings.ToUpper(symbol),
		Date:   ivhistory.Day(s.clock()),
		IV30:   iv30,
		Price:  price,
	}
	if err := s.repo.Upsert(ctx, reading); err != nil {
		return err
	}

	log.Debug().
		Str("symbol", reading.Symbol).
		Float64("iv30", iv30).
		Msg("Recorded daily IV30 reading")

	return nil
}

// RankContext computes rank and percentile for the current IV against
// the default one-year trailing window
func (s *Service) RankContext(ctx context.Context, symbol string, current float64) (Context, error) {
	history, err := s.repo.History(ctx, strings.ToUpper(symbol), ivhistory.DefaultLookbackDays)
	if err != nil {
		return Context{}, err
	}

	return Context{
		Rank:        Rank(current, history),
		Percentile:  Percentile(current, history),
		HistoryDays: len(history),
	}, nil
}
