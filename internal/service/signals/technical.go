package signals

import "math"

const (
	rsiPeriod     = 14
	emaPeriod     = 21
	monthLookback = 22 // trading days, roughly one month

	// MinBars is the history floor below which no signal is produced
	MinBars = 50
)

// rsi computes the 14-period RSI with Wilder smoothing: the average
// gain/loss is seeded from the first `period` deltas and rolled
// forward exponentially. All-gain windows return 100.
func rsi(closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// rsiScore maps RSI onto the 1-10 momentum sub-score through four
// linear regimes: oversold readings are compressed into [1,2], strong
// trends stretch across [7,10]
func rsiScore(r float64) float64 {
	switch {
	case r < 30:
		return scale(r, 0, 30, 1, 2)
	case r < 50:
		return scale(r, 30, 50, 3, 4)
	case r < 70:
		return scale(r, 50, 70, 5, 7)
	default:
		return scale(r, 70, 100, 7, 10)
	}
}

// ema computes the exponential moving average, seeded from the first
// close with smoothing constant 2/(period+1)
func ema(closes []float64, period int) float64 {
	if len(closes) == 0 {
		return 0
	}
	k := 2.0 / (float64(period) + 1.0)
	v := closes[0]
	for _, c := range closes[1:] {
		v = c*k + v*(1-k)
	}
	return v
}

// emaScore maps the percent distance from the EMA, clamped to the
// [-10%, +10%] band, onto [1,10]
func emaScore(price, emaVal float64) float64 {
	if emaVal == 0 {
		return 1
	}
	pct := (price - emaVal) / emaVal * 100
	return scale(pct, -10, 10, 1, 10)
}

// monthReturn is the percent return over the last 22 trading days,
// clamping the lookback index at 0 for short series
func monthReturn(closes []float64) float64 {
	n := len(closes)
	if n == 0 {
		return 0
	}
	idx := n - monthLookback
	if idx < 0 {
		idx = 0
	}
	ref := closes[idx]
	if ref == 0 {
		return 0
	}
	return (closes[n-1] - ref) / ref * 100
}

// returnScore maps the 1-month return, clamped to [-15%, +15%], onto [1,10]
func returnScore(ret float64) float64 {
	return scale(ret, -15, 15, 1, 10)
}

// momentum is the composite score: 40% RSI, 30% EMA distance, 30%
// 1-month return, rounded to one decimal. Always within [1,10] since
// every sub-score clamps.
func momentum(closes []float64) float64 {
	r := rsiScore(rsi(closes, rsiPeriod))
	e := emaScore(closes[len(closes)-1], ema(closes, emaPeriod))
	m := returnScore(monthReturn(closes))
	return round1(0.4*r + 0.3*e + 0.3*m)
}

// scale linearly maps x from [inMin, inMax] to [outMin, outMax],
// clamping at the bounds
func scale(x, inMin, inMax, outMin, outMax float64) float64 {
	if x <= inMin {
		return outMin
	}
	if x >= inMax {
		return outMax
	}
	return outMin + (x-inMin)/(inMax-inMin)*(outMax-outMin)
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
