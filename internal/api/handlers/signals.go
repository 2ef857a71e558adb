package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/response"
	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
)

// SignalEngine produces regime snapshots over the configured basket
type SignalEngine interface {
	Snapshot(ctx context.Context) (*market.RegimeSnapshot, error)
}

// SignalsHandler handles market signal API requests
type SignalsHandler struct {
	engine SignalEngine
}

// NewSignalsHandler creates a new SignalsHandler
func NewSignalsHandler(engine SignalEngine) *SignalsHandler {
	return &SignalsHandler{engine: engine}
}

// GetSignals returns the current regime snapshot
// GET /api/signals
func (h *SignalsHandler) GetSignals(w http.ResponseWriter, r *http.Request) {
	snap, err := h.engine.Snapshot(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute signals")
		response.ExternalAPIError(w, r, "Mboum", err)
		return
	}
	response.Success(w, r, snap)
}
