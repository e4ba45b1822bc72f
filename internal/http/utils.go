package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

const maxBodyBytes = 1 << 20

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps typed domain errors to their status code. Anything
// else is logged and reported as a 500 without leaking details.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, action string) {
	var notFound *domain.ErrNotFound
	var conflict *domain.ErrConflict
	var validation domain.ValidationError

	switch {
	case errors.As(err, &notFound):
		WriteJSONError(w, notFound.Message, http.StatusNotFound)
	case errors.As(err, &conflict):
		WriteJSONError(w, conflict.Message, http.StatusConflict)
	case errors.As(err, &validation):
		WriteJSONError(w, validation.Message, http.StatusBadRequest)
	default:
		log.WithField("error", err.Error()).Error(fmt.Sprintf("Failed to %s", action))
		WriteJSONError(w, fmt.Sprintf("Failed to %s", action), http.StatusInternalServerError)
	}
}

// decodeJSON decodes the request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	return nil
}

// readBody returns the raw request body for partial updates
func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewValidationError("Invalid request body")
	}
	return data, nil
}

// pathID parses a numeric path parameter
func pathID(r *http.Request, name string) (int64, error) {
	return domain.ParseID(r.PathValue(name), name)
}
