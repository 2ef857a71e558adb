package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/response"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/ivrank"
)

// QuoteSource serves quotes joined with their IV rank context
type QuoteSource interface {
	Quote(ctx context.Context, ticker string) (*option.Quote, ivrank.Context, error)
}

// QuoteHandler handles stock quote API requests
type QuoteHandler struct {
	source QuoteSource
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(source QuoteSource) *QuoteHandler {
	return &QuoteHandler{source: source}
}

// quotePayload is the quote with IV30 expressed in percent for display
type quotePayload struct {
	*option.Quote
	IV30Pct float64 `json:"iv30_pct"`
	ivrank.Context
}

// GetQuote retrieves the quote and IV rank context for a ticker
// GET /api/quote/{ticker}
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	if ticker == "" {
		response.BadRequest(w, r, "ticker is required")
		return
	}

	quote, rankCtx, err := h.source.Quote(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, option.ErrTickerNotFound) {
			response.NotFound(w, r, "Unknown ticker: "+ticker)
			return
		}
		log.Error().Err(err).Str("ticker", ticker).Msg("Failed to fetch quote")
		response.ExternalAPIError(w, r, "Cboe", err)
		return
	}

	response.Success(w, r, quotePayload{
		Quote:   quote,
		IV30Pct: quote.IV30 * 100,
		Context: rankCtx,
	})
}
