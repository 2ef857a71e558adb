package handlers

import (
	"net/http"
	"time"

	"github.com/wilsonfong56/ETF-Dashboard/internal/api/response"
	"github.com/wilsonfong56/ETF-Dashboard/internal/infra/database/postgres"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	pool      *postgres.Pool
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(pool *postgres.Pool) *HealthHandler {
	return &HealthHandler{pool: pool, startedAt: time.Now()}
}

// Health returns service status
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	}
	if h.pool != nil {
		payload["database"] = h.pool.Health(r.Context())
	}
	response.Success(w, r, payload)
}
