package analyzer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/ivrank"
)

type fakeSource struct {
	quote      *option.Quote
	chain      []option.RawContract
	quoteErr   error
	fetchCount int
}

func (s *fakeSource) FetchQuote(_ context.Context, _ string) (*option.Quote, error) {
	s.fetchCount++
	if s.quoteErr != nil {
		return nil, s.quoteErr
	}
	return s.quote, nil
}

func (s *fakeSource) FetchChain(_ context.Context, _ string) ([]option.RawContract, error) {
	return s.chain, nil
}

type fakeTracker struct {
	recorded []float64
	rankCtx  ivrank.Context
}

func (t *fakeTracker) Record(_ context.Context, _ string, iv30, _ float64) error {
	t.recorded = append(t.recorded, iv30)
	return nil
}

func (t *fakeTracker) RankContext(_ context.Context, _ string, _ float64) (ivrank.Context, error) {
	return t.rankCtx, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func exp(daysOut int) time.Time {
	return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysOut)
}

func symbolFor(expiration time.Time, otype option.Type, milliStrike int64) string {
	side := "C"
	if otype == option.Put {
		side = "P"
	}
	return fmt.Sprintf("SPY%s%s%08d", expiration.Format("060102"), side, milliStrike)
}

func newTestService(source *fakeSource, tracker *fakeTracker) *Service {
	return NewService(source, tracker, 5*time.Minute, fixedClock(testNow))
}

func TestAnalyze(t *testing.T) {
	quote := &option.Quote{Ticker: "SPY", Price: 500, IV30: 0.20}

	t.Run("caps at six nearest expirations", func(t *testing.T) {
		var chain []option.RawContract
		for i := 1; i <= 7; i++ {
			chain = append(chain, option.RawContract{
				Symbol: symbolFor(exp(i*7), option.Call, 500_000),
				Bid:    1, Ask: 2, Volume: 10, IV: 0.2,
			})
		}
		svc := newTestService(&fakeSource{quote: quote, chain: chain}, &fakeTracker{})

		analysis, err := svc.Analyze(context.Background(), "spy", Params{})
		if err != nil {
			t.Fatal(err)
		}
		if len(analysis.Expirations) != 6 {
			t.Errorf("Expected 6 expirations, got %d", len(analysis.Expirations))
		}
		if len(analysis.Contracts) != 6 {
			t.Errorf("Expected contracts beyond the cap dropped, got %d", len(analysis.Contracts))
		}
		// Farthest expiration is the one dropped
		last := analysis.Expirations[len(analysis.Expirations)-1]
		if !last.Equal(exp(42)) {
			t.Errorf("Expected last expiration %s, got %s", exp(42), last)
		}
	})

	t.Run("mid falls back to last trade", func(t *testing.T) {
		chain := []option.RawContract{
			{Symbol: symbolFor(exp(7), option.Call, 500_000), Bid: 2, Ask: 3, LastTrade: 9.99, IV: 0.2},
			{Symbol: symbolFor(exp(7), option.Put, 500_000), Bid: 0, Ask: 0, LastTrade: 4.20, IV: 0.2},
		}
		svc := newTestService(&fakeSource{quote: quote, chain: chain}, &fakeTracker{})

		analysis, err := svc.Analyze(context.Background(), "SPY", Params{})
		if err != nil {
			t.Fatal(err)
		}
		if analysis.Contracts[0].Mid != 2.5 {
			t.Errorf("Expected mid 2.5, got %v", analysis.Contracts[0].Mid)
		}
		if analysis.Contracts[1].Mid != 4.20 {
			t.Errorf("Expected last trade fallback 4.20, got %v", analysis.Contracts[1].Mid)
		}
	})

	t.Run("unparseable symbols skipped", func(t *testing.T) {
		chain := []option.RawContract{
			{Symbol: "garbage", IV: 0.2},
			{Symbol: symbolFor(exp(7), option.Call, 500_000), Bid: 1, Ask: 2, IV: 0.2},
		}
		svc := newTestService(&fakeSource{quote: quote, chain: chain}, &fakeTracker{})

		analysis, err := svc.Analyze(context.Background(), "SPY", Params{})
		if err != nil {
			t.Fatal(err)
		}
		if len(analysis.Contracts) != 1 {
			t.Errorf("Expected 1 contract, got %d", len(analysis.Contracts))
		}
	})

	t.Run("min dte filter drops expired and near contracts", func(t *testing.T) {
		chain := []option.RawContract{
			{Symbol: symbolFor(exp(-3), option.Call, 500_000), Bid: 1, Ask: 2, IV: 0.2},
			{Symbol: symbolFor(exp(5), option.Call, 500_000), Bid: 1, Ask: 2, IV: 0.2},
			{Symbol: symbolFor(exp(30), option.Call, 500_000), Bid: 1, Ask: 2, IV: 0.2},
		}
		svc := newTestService(&fakeSource{quote: quote, chain: chain}, &fakeTracker{})

		analysis, err := svc.Analyze(context.Background(), "SPY", Params{MinDTE: 7})
		if err != nil {
			t.Fatal(err)
		}
		if len(analysis.Contracts) != 1 {
			t.Fatalf("Expected 1 contract, got %d", len(analysis.Contracts))
		}
		if analysis.Contracts[0].DTE != 30 {
			t.Errorf("Expected the 30 DTE contract, got %d", analysis.Contracts[0].DTE)
		}
	})

	t.Run("negative min dte still drops expired contracts", func(t *testing.T) {
		chain := []option.RawContract{
			{Symbol: symbolFor(exp(-3), option.Call, 500_000), Bid: 1, Ask: 2, IV: 0.2},
			{Symbol: symbolFor(exp(5), option.Call, 500_000), Bid: 1, Ask: 2, IV: 0.2},
		}
		svc := newTestService(&fakeSource{quote: quote, chain: chain}, &fakeTracker{})

		analysis, err := svc.Analyze(context.Background(), "SPY", Params{MinDTE: -10})
		if err != nil {
			t.Fatal(err)
		}
		if len(analysis.Contracts) != 1 {
			t.Fatalf("Expected 1 contract, got %d", len(analysis.Contracts))
		}
		if analysis.Contracts[0].DTE != 5 {
			t.Errorf("Expected the 5 DTE contract, got %d", analysis.Contracts[0].DTE)
		}
	})

	t.Run("zero vol contract gets no probabilities", func(t *testing.T) {
		chain := []option.RawContract{
			{Symbol: symbolFor(exp(7), option.Call, 500_000), Bid: 1, Ask: 2, IV: 0},
		}
		svc := newTestService(&fakeSource{quote: quote, chain: chain}, &fakeTracker{})

		analysis, err := svc.Analyze(context.Background(), "SPY", Params{})
		if err != nil {
			t.Fatal(err)
		}
		c := analysis.Contracts[0]
		if c.ProbITM != 0 || c.ProbProfit != 0 {
			t.Errorf("Expected zero probabilities, got ITM %v profit %v", c.ProbITM, c.ProbProfit)
		}
	})

	t.Run("derived metrics", func(t *testing.T) {
		chain := []option.RawContract{
			{Symbol: symbolFor(exp(30), option.Call, 550_000), Bid: 1, Ask: 2, IV: 0.25},
		}
		svc := newTestService(&fakeSource{quote: quote, chain: chain}, &fakeTracker{})

		analysis, err := svc.Analyze(context.Background(), "SPY", Params{})
		if err != nil {
			t.Fatal(err)
		}
		if analysis.IV30 != 20 {
			t.Errorf("Expected IV30 as percent 20, got %v", analysis.IV30)
		}
		c := analysis.Contracts[0]
		if c.IV != 25 {
			t.Errorf("Expected contract IV 25, got %v", c.IV)
		}
		if c.IVvsIV30 != 5 {
			t.Errorf("Expected IV vs IV30 of 5, got %v", c.IVvsIV30)
		}
		// (550 - 500) / 500 * 100
		if c.Moneyness != 10 {
			t.Errorf("Expected moneyness 10, got %v", c.Moneyness)
		}
		if c.ProbITM <= 0 || c.ProbITM >= 50 {
			t.Errorf("Expected OTM call prob in (0, 50), got %v", c.ProbITM)
		}
	})

	t.Run("records reading before ranking", func(t *testing.T) {
		tracker := &fakeTracker{}
		svc := newTestService(&fakeSource{quote: quote}, tracker)

		if _, err := svc.Analyze(context.Background(), "SPY", Params{}); err != nil {
			t.Fatal(err)
		}
		if len(tracker.recorded) != 1 || tracker.recorded[0] != 0.20 {
			t.Errorf("Expected one recorded reading of 0.20, got %v", tracker.recorded)
		}
	})

	t.Run("snapshot cached within ttl", func(t *testing.T) {
		source := &fakeSource{quote: quote}
		svc := newTestService(source, &fakeTracker{})

		svc.Analyze(context.Background(), "SPY", Params{})
		svc.Analyze(context.Background(), "SPY", Params{})
		if source.fetchCount != 1 {
			t.Errorf("Expected a single upstream fetch, got %d", source.fetchCount)
		}
	})

	t.Run("upstream error surfaces", func(t *testing.T) {
		wantErr := errors.New("boom")
		svc := newTestService(&fakeSource{quoteErr: wantErr}, &fakeTracker{})

		_, err := svc.Analyze(context.Background(), "SPY", Params{})
		if !errors.Is(err, wantErr) {
			t.Errorf("Expected upstream error, got %v", err)
		}
	})
}
