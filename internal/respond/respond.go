// Package respond writes the JSON response envelopes shared by both tiers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/voxctl/voxctl/internal/model"
)

// ErrorResponse is the error body shape for every failure on either tier.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// WriteError writes a standardized error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteUnauthorized writes a 401 without revealing which check failed.
func WriteUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "Unauthorized")
}

// WriteServiceError maps a service-layer error onto its HTTP status using the
// model failure classes. Unclassified errors become 500s.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrPrecondition):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUpstream):
		WriteError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, model.ErrDependency):
		WriteError(w, http.StatusInternalServerError, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
