package handler

import (
	"encoding/json"
	"net/http"

	apperrors "pdf-summary-agent/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestIDFromContext returns the id assigned by the request logging middleware
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err to its HTTP status. Only AppError messages reach the client.
func writeAppError(w http.ResponseWriter, err error) {
	statusCode := apperrors.GetStatusCode(err)
	message := http.StatusText(statusCode)
	if appErr, ok := apperrors.AsAppError(err); ok {
		message = appErr.Message
		if appErr.Details != "" {
			message += ": " + appErr.Details
		}
	}
	writeError(w, statusCode, message)
}
