package analyzer

import (
	"testing"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
)

func contract(otype option.Type, iv, ivVs30 float64, volume, oi int64) option.AnalyzedContract {
	return option.AnalyzedContract{
		Type:         otype,
		IV:           iv,
		IVvsIV30:     ivVs30,
		Volume:       volume,
		OpenInterest: oi,
	}
}

func TestCheapest(t *testing.T) {
	contracts := []option.AnalyzedContract{
		contract(option.Call, 30, 5, 2000, 2000),
		contract(option.Call, 18, -7, 50, 50),
		contract(option.Put, 22, -3, 2000, 2000),
		contract(option.Call, 0, -99, 2000, 2000), // no vol, excluded
	}

	t.Run("sorted by iv vs iv30 ascending", func(t *testing.T) {
		got := Cheapest(contracts, "", false)
		if len(got) != 3 {
			t.Fatalf("Expected 3 contracts, got %d", len(got))
		}
		if got[0].IVvsIV30 != -7 || got[1].IVvsIV30 != -3 || got[2].IVvsIV30 != 5 {
			t.Errorf("Wrong order: %v %v %v", got[0].IVvsIV30, got[1].IVvsIV30, got[2].IVvsIV30)
		}
	})

	t.Run("type filter", func(t *testing.T) {
		got := Cheapest(contracts, option.Put, false)
		if len(got) != 1 || got[0].Type != option.Put {
			t.Errorf("Expected only the put, got %v", got)
		}
	})

	t.Run("liquid only drops thin contracts", func(t *testing.T) {
		got := Cheapest(contracts, "", true)
		for _, c := range got {
			if !IsLiquid(c) {
				t.Errorf("Expected only liquid contracts, got volume %d oi %d", c.Volume, c.OpenInterest)
			}
		}
		if len(got) != 2 {
			t.Errorf("Expected 2 liquid contracts, got %d", len(got))
		}
	})
}

func TestMostLiquid(t *testing.T) {
	contracts := []option.AnalyzedContract{
		contract(option.Call, 20, 0, 300, 600),
		contract(option.Call, 20, 0, 5000, 1000),
		contract(option.Call, 20, 0, 300, 100),  // OI below floor
		contract(option.Call, 20, 0, 100, 5000), // volume below floor
	}

	got := MostLiquid(contracts)
	if len(got) != 2 {
		t.Fatalf("Expected 2 contracts, got %d", len(got))
	}
	if got[0].Volume != 5000 {
		t.Errorf("Expected highest volume first, got %d", got[0].Volume)
	}
}

func TestUnusualActivity(t *testing.T) {
	contracts := []option.AnalyzedContract{
		contract(option.Call, 20, 0, 6000, 1000),  // 6x
		contract(option.Call, 20, 0, 2500, 1000),  // 2.5x, below ratio
		contract(option.Call, 20, 0, 500, 100),    // 5x but volume below floor
		contract(option.Put, 20, 0, 3000, 0),      // new position, zero OI
		contract(option.Put, 20, 0, 1500, 0),      // zero OI but below its floor
	}

	got := UnusualActivity(contracts)
	if len(got) != 2 {
		t.Fatalf("Expected 2 flagged contracts, got %d", len(got))
	}
	if got[0].Volume != 6000 || got[0].VolOIRatio != 6.0 || got[0].Unbounded {
		t.Errorf("Unexpected first flag: %+v", got[0])
	}
	if got[1].Volume != 3000 || !got[1].Unbounded {
		t.Errorf("Expected zero-OI contract flagged unbounded, got %+v", got[1])
	}
}

func TestSummarize(t *testing.T) {
	analysis := &option.ChainAnalysis{
		IV30: 20,
		Contracts: []option.AnalyzedContract{
			contract(option.Call, 30, 0, 0, 0),
			contract(option.Call, 26, 0, 0, 0),
			contract(option.Put, 34, 0, 0, 0),
			contract(option.Call, 0, 0, 0, 0), // excluded from averages
		},
	}

	got := Summarize(analysis)
	if got.AvgCallIV != 28 {
		t.Errorf("Expected avg call IV 28, got %v", got.AvgCallIV)
	}
	if got.AvgPutIV != 34 {
		t.Errorf("Expected avg put IV 34, got %v", got.AvgPutIV)
	}
	if got.Skew != 6 {
		t.Errorf("Expected skew 6, got %v", got.Skew)
	}
	if got.Assessment != "EXPENSIVE" {
		t.Errorf("Expected EXPENSIVE against IV30 20, got %s", got.Assessment)
	}

	analysis.IV30 = 40
	if got := Summarize(analysis); got.Assessment != "CHEAP" {
		t.Errorf("Expected CHEAP against IV30 40, got %s", got.Assessment)
	}

	analysis.IV30 = 28
	if got := Summarize(analysis); got.Assessment != "FAIR" {
		t.Errorf("Expected FAIR against IV30 28, got %s", got.Assessment)
	}
}
