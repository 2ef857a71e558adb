package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/response"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
	"github.com/wilsonfong56/ETF-Dashboard/internal/service/analyzer"
)

// ChainAnalyzer produces analyzed chain snapshots
type ChainAnalyzer interface {
	Analyze(ctx context.Context, ticker string, params analyzer.Params) (*option.ChainAnalysis, error)
}

// OptionsHandler handles options chain API requests
type OptionsHandler struct {
	analyzer ChainAnalyzer
}

// NewOptionsHandler creates a new OptionsHandler
func NewOptionsHandler(a ChainAnalyzer) *OptionsHandler {
	return &OptionsHandler{analyzer: a}
}

// chainPayload joins the analysis with the derived screening tables
type chainPayload struct {
	*option.ChainAnalysis
	Summary    option.ChainSummary       `json:"summary"`
	Cheapest   []option.AnalyzedContract `json:"cheapest"`
	MostLiquid []option.AnalyzedContract `json:"most_liquid"`
	Unusual    []option.UnusualContract  `json:"unusual"`
}

// GetChain analyzes the options chain for a ticker
// GET /api/options/{ticker}?min_dte=0&type=call&liquid_only=true
func (h *OptionsHandler) GetChain(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	if ticker == "" {
		response.BadRequest(w, r, "ticker is required")
		return
	}

	params := analyzer.Params{}
	if v := r.URL.Query().Get("min_dte"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.BadRequest(w, r, "min_dte must be a non-negative integer")
			return
		}
		params.MinDTE = n
	}

	typeFilter, ok := parseTypeFilter(r.URL.Query().Get("type"))
	if !ok {
		response.BadRequest(w, r, "type must be call or put")
		return
	}
	liquidOnly := r.URL.Query().Get("liquid_only") == "true"

	analysis, err := h.analyzer.Analyze(r.Context(), ticker, params)
	if err != nil {
		if errors.Is(err, option.ErrTickerNotFound) {
			response.NotFound(w, r, "Unknown ticker: "+ticker)
			return
		}
		log.Error().Err(err).Str("ticker", ticker).Msg("Failed to analyze options chain")
		response.ExternalAPIError(w, r, "Cboe", err)
		return
	}

	response.Success(w, r, chainPayload{
		ChainAnalysis: analysis,
		Summary:       analyzer.Summarize(analysis),
		Cheapest:      analyzer.Cheapest(analysis.Contracts, typeFilter, liquidOnly),
		MostLiquid:    analyzer.MostLiquid(analysis.Contracts),
		Unusual:       analyzer.UnusualActivity(analysis.Contracts),
	})
}

func parseTypeFilter(v string) (option.Type, bool) {
	switch strings.ToLower(v) {
	case "":
		return "", true
	case "call":
		return option.Call, true
	case "put":
		return option.Put, true
	default:
		return "", false
	}
}
