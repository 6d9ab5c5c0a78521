package controllers

import (
	"net/http"

	"fitbook/internal/providers"
	"fitbook/internal/services"

	json "github.com/goccy/go-json"
)

type PublicController struct {
	logger  providers.Logger
	state   services.StateServiceInterface
	booking services.BookingServiceInterface
	cache   providers.CacheProviderInterface
}

func NewPublicController(logger providers.Logger, state services.StateServiceInterface, booking services.BookingServiceInterface, cache providers.CacheProviderInterface) *PublicController {
	return &PublicController{
		logger:  logger,
		state:   state,
		booking: booking,
		cache:   cache,
	}
}

// GetState serves the public projection, read-through cached.
func (pc *PublicController) GetState(w http.ResponseWriter, r *http.Request) {
	if data, ok := pc.cache.Get(publicStateCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	state, err := pc.state.LoadState(r.Context())
	if err != nil {
		writeServiceError(w, pc.logger, providers.TypeGet, err)
		return
	}
	data, err := json.Marshal(pc.state.PublicProjection(state))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pc.cache.Set(publicStateCacheKey, data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type confirmResponse struct {
	Status string `json:"status"`
}

// Confirm is the booking-confirmation polling endpoint.
func (pc *PublicController) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	status, err := pc.booking.ConfirmationStatus(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, pc.logger, providers.TypeGet, err)
		return
	}
	if status == services.StatusMissing {
		writeJSON(w, http.StatusBadRequest, confirmResponse{Status: status})
		return
	}
	writeJSON(w, http.StatusOK, confirmResponse{Status: status})
}

type checkoutResponse struct {
	URL string `json:"url"`
}

func (pc *PublicController) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req services.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input.", http.StatusBadRequest)
		return
	}

	redirectURL, err := pc.booking.CreateCheckout(r.Context(), &req)
	if err != nil {
		writeServiceError(w, pc.logger, providers.TypePost, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{URL: redirectURL})
}
