package ivrank

import "github.com/wilsonfong56/ETF-Dashboard/internal/domain/ivhistory"

// Rank positions the current IV within its trailing range:
// (current - min) / (max - min) * 100. Fewer than two historical
// points means no signal yet, which is nil rather than zero. A
// degenerate constant history pins the rank at 50.
func Rank(current float64, history []ivhistory.Reading) *float64 {
	if len(history) < 2 {
		return nil
	}
	min, max := history[0].IV30, history[0].IV30
	for _, r := range history[1:] {
		if r.IV30 < min {
			min = r.IV30
		}
		if r.IV30 > max {
			max = r.IV30
		}
	}
	if max == min {
		v := 50.0
		return &v
	}
	v := (current - min) / (max - min) * 100
	return &v
}

// Percentile is the fraction of trailing readings strictly below the
// current IV, times 100. Ties do not count toward the percentile, so a
// reading on a plateau shares its percentile with lower values.
func Percentile(current float64, history []ivhistory.Reading) *float64 {
	if len(history) < 2 {
		return nil
	}
	below := 0
	for _, r := range history {
		if r.IV30 < current {
			below++
		}
	}
	v := float64(below) / float64(len(history)) * 100
	return &v
}
