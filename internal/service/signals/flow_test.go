package signals

import (
	"testing"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
)

func bar(open, close float64, volume int64) market.PriceBar {
	return market.PriceBar{Open: open, Close: close, Volume: volume}
}

func TestVolumeFlow(t *testing.T) {
	t.Run("accumulation", func(t *testing.T) {
		bars := []market.PriceBar{
			bar(100, 101, 1000),
			bar(101, 102, 1000),
			bar(102, 101, 500),
			bar(101, 103, 1000),
		}
		// 3000 of 3500 on up days = 0.857
		if got := volumeFlow(bars); got != market.FlowAccum {
			t.Errorf("Expected Accum, got %s", got)
		}
	})

	t.Run("distribution", func(t *testing.T) {
		bars := []market.PriceBar{
			bar(100, 99, 1000),
			bar(99, 98, 1000),
			bar(98, 99, 500),
			bar(99, 97, 1000),
		}
		if got := volumeFlow(bars); got != market.FlowDistrib {
			t.Errorf("Expected Distrib, got %s", got)
		}
	})

	t.Run("balanced volume is neutral", func(t *testing.T) {
		bars := []market.PriceBar{
			bar(100, 101, 1000),
			bar(101, 100, 1000),
		}
		if got := volumeFlow(bars); got != market.FlowNeutral {
			t.Errorf("Expected Neutral, got %s", got)
		}
	})

	t.Run("zero volume is neutral", func(t *testing.T) {
		bars := []market.PriceBar{bar(100, 101, 0), bar(101, 102, 0)}
		if got := volumeFlow(bars); got != market.FlowNeutral {
			t.Errorf("Expected Neutral, got %s", got)
		}
	})

	t.Run("only last ten bars count", func(t *testing.T) {
		// Heavy early selling followed by ten buying days
		bars := make([]market.PriceBar, 0, 20)
		for i := 0; i < 10; i++ {
			bars = append(bars, bar(100, 90, 100000))
		}
		for i := 0; i < 10; i++ {
			bars = append(bars, bar(100, 110, 1000))
		}
		if got := volumeFlow(bars); got != market.FlowAccum {
			t.Errorf("Expected the early window ignored, got %s", got)
		}
	})

	t.Run("unchanged close counts as up", func(t *testing.T) {
		bars := []market.PriceBar{
			bar(100, 100, 1000),
			bar(100, 100, 1000),
		}
		if got := volumeFlow(bars); got != market.FlowAccum {
			t.Errorf("Expected flat closes to count as up volume, got %s", got)
		}
	})
}
