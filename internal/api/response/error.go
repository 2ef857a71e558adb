package response

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Error codes
const (
	ErrCodeInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeNotFound         = "NOT_FOUND"

	ErrCodeDatabaseError    = "DATABASE_ERROR"
	ErrCodeExternalAPIError = "EXTERNAL_API_ERROR"
)

// Error sends an error response
func Error(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	errorWithDetails(w, r, statusCode, code, message, "")
}

// BadRequest sends a 400 Bad Request error
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusBadRequest, ErrCodeInvalidParameter, message)
}

// NotFound sends a 404 Not Found error
func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusNotFound, ErrCodeNotFound, message)
}

// InternalError sends a 500 Internal Server Error
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	errorWithDetails(w, r, http.StatusInternalServerError, ErrCodeInternalServer, "An unexpected error occurred", details)
}

// ExternalAPIError sends a 502 for upstream data source failures
func ExternalAPIError(w http.ResponseWriter, r *http.Request, serviceName string, err error) {
	message := "External service error"
	if serviceName != "" {
		message = serviceName + " service error"
	}
	details := ""
	if err != nil {
		details = err.Error()
	}
	errorWithDetails(w, r, http.StatusBadGateway, ErrCodeExternalAPIError, message, details)
}

func errorWithDetails(w http.ResponseWriter, r *http.Request, statusCode int, code, message, details string) {
	requestID := middleware.GetReqID(r.Context())

	log.Error().
		Str("request_id", requestID).
		Str("error_code", code).
		Str("message", message).
		Int("status", statusCode).
		Msg("API error response")

	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: requestID,
			Timestamp: time.Now(),
		},
	})
}
