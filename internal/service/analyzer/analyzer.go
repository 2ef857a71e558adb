package analyzer

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/ivrank"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/snapshot"
)

// DefaultMaxExpirations bounds response size regardless of how many
// expirations a chain offers
const DefaultMaxExpirations = 6

// QuoteChainSource is the external quote/options-chain collaborator
type QuoteChainSource interface {
	FetchQuote(ctx context.Context, ticker string) (*option.Quote, error)
	FetchChain(ctx context.Context, ticker string) ([]option.RawContract, error)
}

// IVTracker records daily IV readings and supplies rank context
type IVTracker interface {
	Record(ctx context.Context, symbol string, iv30, price float64) error
	RankContext(ctx context.Context, symbol string, current float64) (ivrank.Context, error)
}

// chainSnapshot is the cached unit: one quote plus its raw chain
type chainSnapshot struct {
	quote *option.Quote
	chain []option.RawContract
}

// Params tune a single analysis call
type Params struct {
	MinDTE         int
	MaxExpirations int // 0 means DefaultMaxExpirations
}

// Service analyzes options chains for a ticker
type Service struct {
	source QuoteChainSource
	iv     IVTracker
	cache  *snapshot.Cache[string, chainSnapshot]
	clock  func() time.Time
}

// NewService creates the analyzer. A nil clock uses time.Now.
func NewService(source QuoteChainSource, iv IVTracker, ttl time.Duration, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		source: source,
		iv:     iv,
		cache:  snapshot.New[string, chainSnapshot](ttl, snapshot.Clock(clock)),
		clock:  clock,
	}
}

// Analyze fetches the quote and chain for a ticker and computes the
// per-contract metrics. Unparseable contract symbols are skipped
// silently; a chain with zero parseable contracts yields an empty
// analysis, not a failure.
func (s *Service) Analyze(ctx context.Context, ticker string, params Params) (*option.ChainAnalysis, error) {
	ticker = strings.ToUpper(ticker)
	if params.MaxExpirations <= 0 {
		params.MaxExpirations = DefaultMaxExpirations
	}

	snap, err := s.cache.GetOrFetch(ticker, func() (chainSnapshot, error) {
		quote, err := s.source.FetchQuote(ctx, ticker)
		if err != nil {
			return chainSnapshot{}, err
		}
		chain, err := s.source.FetchChain(ctx, ticker)
		if err != nil {
			return chainSnapshot{}, err
		}
		return chainSnapshot{quote: quote, chain: chain}, nil
	})
	if err != nil {
		return nil, err
	}

	quote := snap.quote
	iv30Pct := quote.IV30 * 100

	// Persist today's reading before ranking so the current value is
	// part of its own trailing window, as a daily cron would see it
	if err := s.iv.Record(ctx, ticker, quote.IV30, quote.Price); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("Failed to record IV reading")
	}
	rankCtx, err := s.iv.RankContext(ctx, ticker, quote.IV30)
	if err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("Failed to load IV history")
		rankCtx = ivrank.Context{}
	}

	today := dateOf(s.clock())

	// Expired contracts are always dropped, even if the caller asks
	// for a negative cutoff
	if params.MinDTE < 0 {
		params.MinDTE = 0
	}

	contracts := make([]option.AnalyzedContract, 0, len(snap.chain))
	for _, raw := range snap.chain {
		parsed, ok := option.ParseSymbol(raw.Symbol)
		if !ok {
			continue
		}

		dte := int(parsed.Expiration.Sub(today).Hours() / 24)
		if dte < params.MinDTE {
			continue
		}

		mid := raw.LastTrade
		if raw.Bid > 0 && raw.Ask > 0 {
			mid = round2((raw.Bid + raw.Ask) / 2)
		}

		contracts = append(contracts, option.AnalyzedContract{
			Symbol:       raw.Symbol,
			Type:         parsed.Type,
			Expiration:   parsed.Expiration,
			DTE:          dte,
			Strike:       parsed.Strike,
			Bid:          raw.Bid,
			Ask:          raw.Ask,
			Mid:          mid,
			Last:         raw.LastTrade,
			Volume:       raw.Volume,
			OpenInterest: raw.OpenInterest,
			IV:           round2(raw.IV * 100),
			Delta:        raw.Delta,
			Gamma:        raw.Gamma,
			Theta:        raw.Theta,
			Vega:         raw.Vega,
		})
	}

	expirations := nearestExpirations(contracts, params.MaxExpirations)
	contracts = withinExpirations(contracts, expirations)

	spot := quote.Price
	for i := range contracts {
		c := &contracts[i]
		strike := c.Strike.InexactFloat64()

		c.IVvsIV30 = round2(c.IV - iv30Pct)
		if spot > 0 {
			c.Moneyness = round1((strike - spot) / spot * 100)
		}

		// Same-day expiry floors at one day so time to expiry stays
		// positive
		tte := math.Max(float64(c.DTE), 1) / 365

		if c.IV > 0 {
			c.ProbITM = round1(ProbITM(c.Type, spot, strike, tte, c.IV/100, DefaultRiskFreeRate))
			if c.Mid > 0 {
				c.ProbProfit = round1(ProbProfit(c.Type, spot, strike, c.Mid, tte, c.IV/100, DefaultRiskFreeRate))
			}
		}
	}

	log.Debug().
		Str("ticker", ticker).
		Int("contracts", len(contracts)).
		Int("expirations", len(expirations)).
		Msg("Analyzed options chain")

	return &option.ChainAnalysis{
		ID:           uuid.New(),
		Ticker:       ticker,
		Price:        quote.Price,
		IV30:         iv30Pct,
		IV30Change:   quote.IV30Change,
		GeneratedAt:  s.clock(),
		IVRank:       rankCtx.Rank,
		IVPercentile: rankCtx.Percentile,
		HistoryDays:  rankCtx.HistoryDays,
		Expirations:  expirations,
		Contracts:    contracts,
	}, nil
}

// Quote returns the cached (or freshly fetched) quote together with
// its IV rank context, recording today's reading as a side effect
func (s *Service) Quote(ctx context.Context, ticker string) (*option.Quote, ivrank.Context, error) {
	ticker = strings.ToUpper(ticker)

	quote, err := s.source.FetchQuote(ctx, ticker)
	if err != nil {
		return nil, ivrank.Context{}, err
	}

	if err := s.iv.Record(ctx, ticker, quote.IV30, quote.Price); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("Failed to record IV reading")
	}
	rankCtx, err := s.iv.RankContext(ctx, ticker, quote.IV30)
	if err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("Failed to load IV history")
		rankCtx = ivrank.Context{}
	}

	return quote, rankCtx, nil
}

// nearestExpirations returns the distinct expirations sorted ascending,
// capped at max; contracts beyond the cap are dropped from the analysis
func nearestExpirations(contracts []option.AnalyzedContract, max int) []time.Time {
	seen := make(map[time.Time]struct{})
	var out []time.Time
	for _, c := range contracts {
		if _, ok := seen[c.Expiration]; ok {
			continue
		}
		seen[c.Expiration] = struct{}{}
		out = append(out, c.Expiration)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	if len(out) > max {
		out = out[:max]
	}
	return out
}

func withinExpirations(contracts []option.AnalyzedContract, expirations []time.Time) []option.AnalyzedContract {
	keep := make(map[time.Time]struct{}, len(expirations))
	for _, e := range expirations {
		keep[e] = struct{}{}
	}
	out := contracts[:0]
	for _, c := range contracts {
		if _, ok := keep[c.Expiration]; ok {
			out = append(out, c)
		}
	}
	return out
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
