package signals

import "github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"

const (
	flowWindow       = 10
	accumThreshold   = 0.58
	distribThreshold = 0.42
)

// volumeFlow classifies the last ten bars by the share of volume on
// up days (close at or above open). Zero total volume is neutral, not
// an error.
func volumeFlow(bars []market.PriceBar) market.FlowLabel {
	if len(bars) > flowWindow {
		bars = bars[len(bars)-flowWindow:]
	}

	var upVolume, totalVolume int64
	for _, b := range bars {
		totalVolume += b.Volume
		if b.Close >= b.Open {
			upVolume += b.Volume
		}
	}
	if totalVolume == 0 {
		return market.FlowNeutral
	}

	ratio := float64(upVolume) / float64(totalVolume)
	switch {
	case ratio > accumThreshold:
		return market.FlowAccum
	case ratio < distribThreshold:
		return market.FlowDistrib
	default:
		return market.FlowNeutral
	}
}
