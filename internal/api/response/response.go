package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// SuccessResponse represents a successful API response
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

// Meta represents metadata in response
type Meta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
	Count     int       `json:"count,omitempty"`
}

// Success sends a successful response with data
func Success(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetReqID(r.Context()),
			Timestamp: time.Now(),
		},
	})
}

// SuccessList sends a successful response with list data and count
func SuccessList(w http.ResponseWriter, r *http.Request, data interface{}, count int) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetReqID(r.Context()),
			Timestamp: time.Now(),
			Count:     count,
		},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
