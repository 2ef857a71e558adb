package analyzer

import (
	"sort"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
)

// Liquidity thresholds. Offered as filters on top of an analysis, not
// enforced during it.
const (
	MinLiquidVolume       = 1000
	MinLiquidOpenInterest = 1000

	mostLiquidMinVolume = 200
	mostLiquidMinOI     = 500

	unusualMinVolume       = 1000
	unusualVolOIRatio      = 3.0
	unusualZeroOIMinVolume = 2000

	defaultTableSize = 20
)

// IsLiquid reports whether a contract clears the volume or open
// interest floor
func IsLiquid(c option.AnalyzedContract) bool {
	return c.Volume >= MinLiquidVolume || c.OpenInterest >= MinLiquidOpenInterest
}

// Cheapest returns the contracts with the lowest per-strike IV relative
// to IV30, where negative IVvsIV30 means cheap versus the market. Contracts
// without an implied vol are excluded. typeFilter narrows to calls or
// puts; empty keeps both.
func Cheapest(contracts []option.AnalyzedContract, typeFilter option.Type, liquidOnly bool) []option.AnalyzedContract {
	var out []option.AnalyzedContract
	for _, c := range contracts {
		if c.IV <= 0 {
			continue
		}
		if typeFilter != "" && c.Type != typeFilter {
			continue
		}
		if liquidOnly && !IsLiquid(c) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].IVvsIV30 < out[j].IVvsIV30 })
	return truncate(out, defaultTableSize)
}

// MostLiquid returns the highest-volume contracts that clear both the
// volume and open interest floors
func MostLiquid(contracts []option.AnalyzedContract) []option.AnalyzedContract {
	var out []option.AnalyzedContract
	for _, c := range contracts {
		if c.Volume >= mostLiquidMinVolume && c.OpenInterest >= mostLiquidMinOI {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Volume > out[j].Volume })
	return truncate(out, defaultTableSize)
}

// UnusualActivity flags contracts trading well above their open
// interest: volume at least 3x OI, or significant volume against zero
// OI (brand-new positions, reported with an unbounded ratio).
func UnusualActivity(contracts []option.AnalyzedContract) []option.UnusualContract {
	var out []option.UnusualContract
	for _, c := range contracts {
		switch {
		case c.OpenInterest > 0 && c.Volume >= unusualMinVolume:
			ratio := float64(c.Volume) / float64(c.OpenInterest)
			if ratio >= unusualVolOIRatio {
				out = append(out, option.UnusualContract{
					AnalyzedContract: c,
					VolOIRatio:       round1(ratio),
				})
			}
		case c.OpenInterest == 0 && c.Volume >= unusualZeroOIMinVolume:
			out = append(out, option.UnusualContract{
				AnalyzedContract: c,
				Unbounded:        true,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Volume > out[j].Volume })
	if len(out) > defaultTableSize {
		out = out[:defaultTableSize]
	}
	return out
}

// Summarize averages per-side implied vol and grades the chain against
// the 30-day figure
func Summarize(analysis *option.ChainAnalysis) option.ChainSummary {
	var callSum, putSum float64
	var callN, putN int
	for _, c := range analysis.Contracts {
		if c.IV <= 0 {
			continue
		}
		if c.Type == option.Call {
			callSum += c.IV
			callN++
		} else {
			putSum += c.IV
			putN++
		}
	}

	var avgCall, avgPut float64
	if callN > 0 {
		avgCall = callSum / float64(callN)
	}
	if putN > 0 {
		avgPut = putSum / float64(putN)
	}

	assessment := "FAIR"
	switch {
	case avgCall > analysis.IV30*1.1:
		assessment = "EXPENSIVE"
	case avgCall < analysis.IV30*0.9:
		assessment = "CHEAP"
	}

	return option.ChainSummary{
		AvgCallIV:  round1(avgCall),
		AvgPutIV:   round1(avgPut),
		Skew:       round1(avgPut - avgCall),
		Assessment: assessment,
	}
}

func truncate(contracts []option.AnalyzedContract, n int) []option.AnalyzedContract {
	if len(contracts) > n {
		return contracts[:n]
	}
	return contracts
}
