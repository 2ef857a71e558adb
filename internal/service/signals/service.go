package signals

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/snapshot"
)

const (
	historyInterval  = "1d"
	fetchConcurrency = 8
)

// HistorySource is the external OHLCV collaborator
type HistorySource interface {
	FetchHistory(ctx context.Context, ticker, interval string) ([]market.PriceBar, error)
}

type chartKey struct {
	ticker   string
	interval string
}

// Engine computes per-instrument momentum signals over a basket and
// aggregates them into a regime classification. The basket, including
// each instrument's risk class, is configuration rather than code.
type Engine struct {
	source HistorySource
	basket market.Basket

	chartCache  *snapshot.Cache[chartKey, []market.PriceBar]
	signalCache *snapshot.Cache[struct{}, *market.RegimeSnapshot]
	clock       func() time.Time
}

// NewEngine creates the signal engine. A nil clock uses time.Now.
func NewEngine(source HistorySource, basket market.Basket, chartTTL, signalTTL time.Duration, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		source:      source,
		basket:      basket,
		chartCache:  snapshot.New[chartKey, []market.PriceBar](chartTTL, snapshot.Clock(clock)),
		signalCache: snapshot.New[struct{}, *market.RegimeSnapshot](signalTTL, snapshot.Clock(clock)),
		clock:       clock,
	}
}

// History returns the cached price history for a ticker and interval
func (e *Engine) History(ctx context.Context, ticker, interval string) ([]market.PriceBar, error) {
	return e.chartCache.GetOrFetch(chartKey{ticker: ticker, interval: interval}, func() ([]market.PriceBar, error) {
		return e.source.FetchHistory(ctx, ticker, interval)
	})
}

// Snapshot computes (or serves the cached) regime snapshot for the
// configured basket
func (e *Engine) Snapshot(ctx context.Context) (*market.RegimeSnapshot, error) {
	return e.signalCache.GetOrFetch(struct{}{}, func() (*market.RegimeSnapshot, error) {
		return e.compute(ctx)
	})
}

func (e *Engine) compute(ctx context.Context) (*market.RegimeSnapshot, error) {
	slots := make([]*market.SignalResult, len(e.basket))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, inst := range e.basket {
		i, inst := i, inst
		g.Go(func() error {
			bars, err := e.History(gctx, inst.Ticker, historyInterval)
			if err != nil {
				// One bad instrument should not sink the whole batch
				log.Warn().Err(err).Str("ticker", inst.Ticker).Msg("Skipping instrument, history fetch failed")
				return nil
			}
			slots[i] = e.signalFor(inst, bars)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]market.SignalResult, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	// Relative strength needs the whole batch: each instrument's
	// 1-month return against the batch average
	if len(results) > 0 {
		var sum float64
		for _, r := range results {
			sum += r.MonthReturn
		}
		avg := sum / float64(len(results))
		for i := range results {
			results[i].RelativeStrength = round1(scale(results[i].MonthReturn-avg, -10, 10, 1, 10))
		}
	}

	snap := Classify(results, e.clock())

	log.Info().
		Str("label", string(snap.Label)).
		Int("instruments", len(results)).
		Float64("risk_on_breadth", snap.RiskOn.Breadth).
		Float64("risk_off_breadth", snap.RiskOff.Breadth).
		Msg("Computed regime snapshot")

	return &snap, nil
}

// signalFor scores one instrument. Fewer than 50 bars means no signal,
// which is nil rather than a zero-valued result.
func (e *Engine) signalFor(inst market.Instrument, bars []market.PriceBar) *market.SignalResult {
	if len(bars) < MinBars {
		return nil
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	return &market.SignalResult{
		Ticker:      inst.Ticker,
		Name:        inst.Name,
		Class:       inst.Class,
		Price:       closes[len(closes)-1],
		MonthReturn: round1(monthReturn(closes)),
		Momentum:    momentum(closes),
		Flow:        volumeFlow(bars),
	}
}
