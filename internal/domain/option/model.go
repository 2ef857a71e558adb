package option

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type distinguishes calls from puts
type Type string

const (
	Call Type = "call"
	Put  Type = "put"
)

// Quote is a point-in-time stock quote with 30-day implied volatility.
// Fetched fresh per request, never persisted beyond the derived IV reading.
type Quote struct {
	Ticker     string  `json:"ticker"`
	Price      float64 `json:"price"`
	IV30       float64 `json:"iv30"`        // fraction, e.g. 0.253
	IV30Change float64 `json:"iv30_change"` // percentage points
	PrevClose  float64 `json:"prev_close"`
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Volume     int64   `json:"volume"`
}

// RawContract is one entry of an options chain as delivered by the
// quote source, before the symbol has been decoded.
type RawContract struct {
	Symbol       string  `json:"option"`
	Bid          float64 `json:"bid"`
	Ask          float64 `json:"ask"`
	LastTrade    float64 `json:"last_trade_price"`
	Volume       int64   `json:"volume"`
	OpenInterest int64   `json:"open_interest"`
	IV           float64 `json:"iv"` // fraction
	Delta        float64 `json:"delta"`
	Gamma        float64 `json:"gamma"`
	Theta        float64 `json:"theta"`
	Vega         float64 `json:"vega"`
	Theo         float64 `json:"theo"`
}

// Contract is a decoded OCC option identifier
type Contract struct {
	Underlying string          `json:"underlying"`
	Expiration time.Time       `json:"expiration"` // calendar date, UTC midnight
	Type       Type            `json:"type"`
	Strike     decimal.Decimal `json:"strike"` // up to 3 decimal places
}

// AnalyzedContract is a contract joined with its market data and the
// derived per-contract metrics. Immutable once computed for a snapshot.
type AnalyzedContract struct {
	Symbol     string          `json:"symbol"`
	Type       Type            `json:"type"`
	Expiration time.Time       `json:"expiration"`
	DTE        int             `json:"dte"`
	Strike     decimal.Decimal `json:"strike"`

	Bid          float64 `json:"bid"`
	Ask          float64 `json:"ask"`
	Mid          float64 `json:"mid"`
	Last         float64 `json:"last"`
	Volume       int64   `json:"volume"`
	OpenInterest int64   `json:"oi"`

	IV    float64 `json:"iv"` // percent, 2 decimals
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`

	IVvsIV30   float64 `json:"iv_vs_iv30"` // contract IV% minus quote IV30%
	Moneyness  float64 `json:"moneyness"`  // (strike - spot) / spot * 100
	ProbITM    float64 `json:"prob_itm"`
	ProbProfit float64 `json:"prob_profit"`
}

// UnusualContract is a contract flagged for unusual activity, with its
// volume-to-open-interest ratio. A zero-OI contract carries an infinite
// ratio and is reported with Unbounded set instead.
type UnusualContract struct {
	AnalyzedContract
	VolOIRatio float64 `json:"vol_oi_ratio"`
	Unbounded  bool    `json:"unbounded"`
}

// ChainSummary aggregates per-side implied volatility for a chain
type ChainSummary struct {
	AvgCallIV  float64 `json:"avg_call_iv"` // percent
	AvgPutIV   float64 `json:"avg_put_iv"`  // percent
	Skew       float64 `json:"skew"`        // put minus call, percentage points
	Assessment string  `json:"assessment"`  // EXPENSIVE, CHEAP, FAIR
}

// ChainAnalysis is the full analyzed snapshot for one ticker
type ChainAnalysis struct {
	ID          uuid.UUID `json:"id"`
	Ticker      string    `json:"ticker"`
	Price       float64   `json:"price"`
	IV30        float64   `json:"iv30"`        // percent
	IV30Change  float64   `json:"iv30_change"` // percentage points
	GeneratedAt time.Time `json:"generated_at"`

	// nil until at least two daily readings exist
	IVRank       *float64 `json:"iv_rank"`
	IVPercentile *float64 `json:"iv_percentile"`
	HistoryDays  int      `json:"iv_history_days"`

	Expirations []time.Time        `json:"expirations"` // ascending, at most the configured cap
	Contracts   []AnalyzedContract `json:"contracts"`
}
