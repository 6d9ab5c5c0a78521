package controllers

import (
	"errors"
	"net/http"

	"fitbook/internal/models"
	"fitbook/internal/providers"
	"fitbook/internal/services"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const publicStateCacheKey = "public:state"

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
// Validation and conflict reasons are surfaced verbatim; anything else is
// an upstream failure and stays opaque.
func writeServiceError(w http.ResponseWriter, logger providers.Logger, logType providers.TypeEnum, err error) {
	var validationErr *services.ValidationError
	var conflictErr *models.ConflictError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &conflictErr):
		http.Error(w, conflictErr.Reason, http.StatusConflict)
	case errors.Is(err, services.ErrPriceConfig):
		logger.Errorf(logType, "Price configuration error: %s", err)
		http.Error(w, "Invalid price configuration.", http.StatusInternalServerError)
	default:
		logger.Errorf(logType, "Request failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
