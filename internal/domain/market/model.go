package market

import (
	"time"

	"github.com/google/uuid"
)

// PriceBar is one OHLCV record; histories are ordered by date ascending
type PriceBar struct {
	Date   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// RiskClass is the static risk classification of a basket instrument
type RiskClass string

const (
	RiskOn  RiskClass = "risk-on"
	RiskOff RiskClass = "risk-off"
	Neutral RiskClass = "neutral"
)

// FlowLabel classifies recent volume as accumulation or distribution
type FlowLabel string

const (
	FlowAccum   FlowLabel = "Accum"
	FlowDistrib FlowLabel = "Distrib"
	FlowNeutral FlowLabel = "Neutral"
)

// RegimeLabel is the aggregate market regime over a basket
type RegimeLabel string

const (
	RegimeRiskOn      RegimeLabel = "RISK-ON"
	RegimeRiskOff     RegimeLabel = "RISK-OFF"
	RegimeLiquidation RegimeLabel = "LIQUIDATION"
	RegimeMixed       RegimeLabel = "MIXED"
)

// SignalResult holds the per-instrument momentum scores.
// Scores are on a 1-10 scale; MonthReturn is a percentage.
type SignalResult struct {
	Ticker           string    `json:"ticker"`
	Name             string    `json:"name"`
	Class            RiskClass `json:"class"`
	Price            float64   `json:"price"`
	MonthReturn      float64   `json:"month_return"`
	Momentum         float64   `json:"momentum"`
	RelativeStrength float64   `json:"relative_strength"`
	Flow             FlowLabel `json:"flow"`
}

// ClassStats aggregates one risk class within a regime snapshot
type ClassStats struct {
	Count       int     `json:"count"`
	AvgMomentum float64 `json:"avg_momentum"`
	Breadth     float64 `json:"breadth"` // % of instruments with momentum >= threshold
}

// RegimeSnapshot is the cross-asset regime classification for a batch
type RegimeSnapshot struct {
	ID          uuid.UUID   `json:"id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Label       RegimeLabel `json:"label"`

	RiskOn  ClassStats `json:"risk_on"`
	RiskOff ClassStats `json:"risk_off"`
	Neutral ClassStats `json:"neutral"`

	AccumCount   int `json:"accum_count"`
	DistribCount int `json:"distrib_count"`

	Results []SignalResult `json:"results"`
}
