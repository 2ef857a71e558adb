package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/ivrank"
)

type fakeQuoteSource struct {
	quote *option.Quote
	err   error
}

func (f *fakeQuoteSource) Quote(_ context.Context, _ string) (*option.Quote, ivrank.Context, error) {
	if f.err != nil {
		return nil, ivrank.Context{}, f.err
	}
	return f.quote, ivrank.Context{HistoryDays: 3}, nil
}

type fakeChartSource struct {
	bars []market.PriceBar
}

func (f *fakeChartSource) History(_ context.Context, _, _ string) ([]market.PriceBar, error) {
	return f.bars, nil
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetQuote(t *testing.T) {
	r := chi.NewRouter()

	t.Run("success envelope", func(t *testing.T) {
		h := NewQuoteHandler(&fakeQuoteSource{quote: &option.Quote{Ticker: "SPY", Price: 500, IV30: 0.185}})
		r.Get("/api/quote/{ticker}", h.GetQuote)

		rec := get(t, r, "/api/quote/spy")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Ticker  string  `json:"ticker"`
				IV30    float64 `json:"iv30"`
				IV30Pct float64 `json:"iv30_pct"`
			} `json:"data"`
			Meta struct {
				Timestamp time.Time `json:"timestamp"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "SPY", resp.Data.Ticker)
		assert.InDelta(t, 18.5, resp.Data.IV30Pct, 1e-9)
		assert.False(t, resp.Meta.Timestamp.IsZero())
	})

	t.Run("unknown ticker is 404", func(t *testing.T) {
		h := NewQuoteHandler(&fakeQuoteSource{err: fmt.Errorf("%w: NOPE", option.ErrTickerNotFound)})
		router := chi.NewRouter()
		router.Get("/api/quote/{ticker}", h.GetQuote)

		rec := get(t, router, "/api/quote/NOPE")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("upstream failure is 502", func(t *testing.T) {
		h := NewQuoteHandler(&fakeQuoteSource{err: fmt.Errorf("%w: down", option.ErrUpstream)})
		router := chi.NewRouter()
		router.Get("/api/quote/{ticker}", h.GetQuote)

		rec := get(t, router, "/api/quote/SPY")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestGetChart(t *testing.T) {
	// Weekday-only bars, so a calendar window holds fewer bars than days
	now := time.Date(2025, 12, 18, 12, 0, 0, 0, time.UTC)
	var bars []market.PriceBar
	for day := now.AddDate(0, 0, -280); day.Before(now); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		bars = append(bars, market.PriceBar{Date: day, Close: 100})
	}

	h := NewChartHandler(&fakeChartSource{bars: bars}, func() time.Time { return now })
	router := chi.NewRouter()
	router.Get("/api/chart/{ticker}", h.GetChart)

	t.Run("range cuts by calendar date", func(t *testing.T) {
		rec := get(t, router, "/api/chart/XLK?range=1mo")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []market.PriceBar `json:"data"`
			Meta struct {
				Count int `json:"count"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Data)
		assert.Equal(t, len(resp.Data), resp.Meta.Count)
		// 30 calendar days of weekday bars, not 30 bars
		assert.Less(t, len(resp.Data), 25)
		cutoff := now.AddDate(0, 0, -30)
		assert.True(t, resp.Data[0].Date.After(cutoff),
			"oldest bar %s should be inside the 30 day window", resp.Data[0].Date)
		assert.Equal(t, bars[len(bars)-1].Date.Unix(), resp.Data[len(resp.Data)-1].Date.Unix())
	})

	t.Run("max keeps everything", func(t *testing.T) {
		rec := get(t, router, "/api/chart/XLK?range=max")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []market.PriceBar `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, len(bars))
	})

	t.Run("unknown range rejected", func(t *testing.T) {
		rec := get(t, router, "/api/chart/XLK?range=2weeks")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestETFRegistryEndpoints(t *testing.T) {
	h := NewETFHandler()
	router := chi.NewRouter()
	router.Get("/api/etfs", h.GetETFs)
	router.Get("/api/holdings/{ticker}", h.GetHoldings)

	t.Run("registry list", func(t *testing.T) {
		rec := get(t, router, "/api/etfs")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Data, "XLK")
	})

	t.Run("holdings for known ticker", func(t *testing.T) {
		rec := get(t, router, "/api/holdings/xlk")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []market.Holding `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data)
	})

	t.Run("unknown ticker is 404", func(t *testing.T) {
		rec := get(t, router, "/api/holdings/ZZZZ")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
