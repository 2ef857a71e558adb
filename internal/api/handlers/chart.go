package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/response"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
)

// ChartSource serves cached OHLCV histories
type ChartSource interface {
	History(ctx context.Context, ticker, interval string) ([]market.PriceBar, error)
}

// rangeDays maps a named range to a trailing calendar-day cutoff
var rangeDays = map[string]int{
	"1mo": 30,
	"3mo": 90,
	"6mo": 180,
	"1y":  365,
	"5y":  1825,
	"max": 0, // full history
}

// ChartHandler handles price chart API requests
type ChartHandler struct {
	source ChartSource
	clock  func() time.Time
}

// NewChartHandler creates a new ChartHandler. A nil clock uses wall time.
func NewChartHandler(source ChartSource, clock func() time.Time) *ChartHandler {
	if clock == nil {
		clock = time.Now
	}
	return &ChartHandler{source: source, clock: clock}
}

// GetChart returns OHLCV bars for a ticker newer than the range cutoff
// GET /api/chart/{ticker}?interval=1d&range=1y
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	if ticker == "" {
		response.BadRequest(w, r, "ticker is required")
		return
	}

	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = "1d"
	}

	rangeName := r.URL.Query().Get("range")
	if rangeName == "" {
		rangeName = "1y"
	}
	days, ok := rangeDays[rangeName]
	if !ok {
		response.BadRequest(w, r, "range must be one of 1mo, 3mo, 6mo, 1y, 5y, max")
		return
	}

	bars, err := h.source.History(r.Context(), ticker, interval)
	if err != nil {
		if errors.Is(err, market.ErrHistoryNotFound) {
			response.NotFound(w, r, "No price history for ticker: "+ticker)
			return
		}
		log.Error().Err(err).Str("ticker", ticker).Msg("Failed to fetch price history")
		response.ExternalAPIError(w, r, "Mboum", err)
		return
	}

	if days > 0 {
		// Copy rather than refilter in place; the source may hand out
		// a cached slice
		cutoff := h.clock().AddDate(0, 0, -days)
		kept := make([]market.PriceBar, 0, len(bars))
		for _, bar := range bars {
			if bar.Date.After(cutoff) {
				kept = append(kept, bar)
			}
		}
		bars = kept
	}

	response.SuccessList(w, r, bars, len(bars))
}
