package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/response"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
)

// ETFHandler serves the static ETF and holdings registries
type ETFHandler struct{}

// NewETFHandler creates a new ETFHandler
func NewETFHandler() *ETFHandler {
	return &ETFHandler{}
}

// GetETFs lists the sector ETF registry
// GET /api/etfs
func (h *ETFHandler) GetETFs(w http.ResponseWriter, r *http.Request) {
	response.SuccessList(w, r, market.ETFRegistry, len(market.ETFRegistry))
}

// GetIntlETFs lists the international ETF registry
// GET /api/intl-etfs
func (h *ETFHandler) GetIntlETFs(w http.ResponseWriter, r *http.Request) {
	response.SuccessList(w, r, market.IntlRegistry, len(market.IntlRegistry))
}

// GetHoldings lists top holdings for a sector ETF
// GET /api/holdings/{ticker}
func (h *ETFHandler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	h.holdings(w, r, market.ETFHoldings)
}

// GetIntlHoldings lists top holdings for an international ETF
// GET /api/intl-holdings/{ticker}
func (h *ETFHandler) GetIntlHoldings(w http.ResponseWriter, r *http.Request) {
	h.holdings(w, r, market.IntlHoldings)
}

func (h *ETFHandler) holdings(w http.ResponseWriter, r *http.Request, registry map[string][]market.Holding) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	holdings, ok := registry[ticker]
	if !ok {
		response.NotFound(w, r, "No holdings for ticker: "+ticker)
		return
	}
	response.SuccessList(w, r, holdings, len(holdings))
}
