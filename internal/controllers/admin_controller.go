package controllers

import (
	"crypto/subtle"
	"net/http"

	"fitbook/internal/models"
	"fitbook/internal/providers"
	"fitbook/internal/services"
	"fitbook/internal/structures"

	json "github.com/goccy/go-json"
)

type AdminController struct {
	logger providers.Logger
	state  services.StateServiceInterface
	cache  providers.CacheProviderInterface
	conf   *structures.Config
}

func NewAdminController(logger providers.Logger, state services.StateServiceInterface, cache providers.CacheProviderInterface, conf *structures.Config) *AdminController {
	return &AdminController{
		logger: logger,
		state:  state,
		cache:  cache,
		conf:   conf,
	}
}

// authorized compares the shared-secret header against the configured
// token. An unset token locks the admin surface entirely.
func (ac *AdminController) authorized(r *http.Request) bool {
	configured := ac.conf.Admin.Token
	if configured == "" {
		return false
	}
	supplied := r.Header.Get("X-Admin-Token")
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) == 1
}

type adminOKResponse struct {
	OK bool `json:"ok"`
}

func (ac *AdminController) UpdateState(w http.ResponseWriter, r *http.Request) {
	if !ac.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var patch services.AdminPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid input.", http.StatusBadRequest)
		return
	}

	if err := ac.state.ApplyAdminPatch(r.Context(), &patch); err != nil {
		writeServiceError(w, ac.logger, providers.TypePost, err)
		return
	}
	ac.cache.Del(publicStateCacheKey)
	writeJSON(w, http.StatusOK, adminOKResponse{OK: true})
}

type adminBookingsResponse struct {
	BookingsConfirmed []models.ConfirmedBooking `json:"bookingsConfirmed"`
}

func (ac *AdminController) ListBookings(w http.ResponseWriter, r *http.Request) {
	if !ac.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookings, err := ac.state.ConfirmedBookings(r.Context())
	if err != nil {
		writeServiceError(w, ac.logger, providers.TypeGet, err)
		return
	}
	writeJSON(w, http.StatusOK, adminBookingsResponse{BookingsConfirmed: bookings})
}
