package analyzer

import (
	"math"

	gaussian "github.com/chobie/go-gaussian"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
)

// DefaultRiskFreeRate approximates the short-term treasury yield
const DefaultRiskFreeRate = 0.045

var stdNormal = gaussian.NewGaussian(0, 1)

// ProbITM returns the probability (0-100) that the option expires in
// the money, from the Black-Scholes d2 term. Zero or negative time to
// expiry or implied vol yields 0: there is no meaningful probability
// without volatility.
func ProbITM(otype option.Type, spot, strike, tte, iv, rf float64) float64 {
	if tte <= 0 || iv <= 0 {
		return 0
	}
	d2 := (math.Log(spot/strike) + (rf-0.5*iv*iv)*tte) / (iv * math.Sqrt(tte))
	if otype == option.Call {
		return stdNormal.Cdf(d2) * 100
	}
	return stdNormal.Cdf(-d2) * 100
}

// ProbProfit returns the probability (0-100) that a long position
// bought at premium finishes past breakeven at expiry. This is a
// breakeven-at-expiry measure and deliberately ignores early
// profit-taking before expiration.
func ProbProfit(otype option.Type, spot, strike, premium, tte, iv, rf float64) float64 {
	if premium <= 0 {
		return 0
	}
	if otype == option.Call {
		return ProbITM(option.Call, spot, strike+premium, tte, iv, rf)
	}
	return ProbITM(option.Put, spot, strike-premium, tte, iv, rf)
}
