package signals

import (
	"time"

	"github.com/google/uuid"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
)

// momentumBreadthThreshold is the score above which an instrument
// counts toward its class's breadth
const momentumBreadthThreshold = 5.5

// Classify aggregates a batch of per-instrument signals into a regime
// snapshot. The label is a pure function of the risk-on and risk-off
// breadth percentages.
func Classify(results []market.SignalResult, generatedAt time.Time) market.RegimeSnapshot {
	snap := market.RegimeSnapshot{
		ID:          uuid.New(),
		GeneratedAt: generatedAt,
		RiskOn:      classStats(results, market.RiskOn),
		RiskOff:     classStats(results, market.RiskOff),
		Neutral:     classStats(results, market.Neutral),
		Results:     results,
	}

	for _, r := range results {
		switch r.Flow {
		case market.FlowAccum:
			snap.AccumCount++
		case market.FlowDistrib:
			snap.DistribCount++
		}
	}

	snap.Label = regimeLabel(snap.RiskOn.Breadth, snap.RiskOff.Breadth)
	return snap
}

// regimeLabel applies the four-rule table in order: one-sided breadth
// above 50% wins, weakness on both sides below 40% is liquidation,
// anything else is mixed
func regimeLabel(riskOnBreadth, riskOffBreadth float64) market.RegimeLabel {
	switch {
	case riskOnBreadth > 50 && riskOffBreadth < 50:
		return market.RegimeRiskOn
	case riskOffBreadth > 50 && riskOnBreadth < 50:
		return market.RegimeRiskOff
	case riskOnBreadth < 40 && riskOffBreadth < 40:
		return market.RegimeLiquidation
	default:
		return market.RegimeMixed
	}
}

func classStats(results []market.SignalResult, class market.RiskClass) market.ClassStats {
	var stats market.ClassStats
	var sum float64
	var above int
	for _, r := range results {
		if r.Class != class {
			continue
		}
		stats.Count++
		sum += r.Momentum
		if r.Momentum >= momentumBreadthThreshold {
			above++
		}
	}
	if stats.Count > 0 {
		stats.AvgMomentum = round1(sum / float64(stats.Count))
		stats.Breadth = round1(float64(above) / float64(stats.Count) * 100)
	}
	return stats
}
