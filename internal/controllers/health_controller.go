package controllers

import (
	"fmt"
	"net/http"
	"time"

	"fitbook/internal/store"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	store     store.StateStore
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Store         string  `json:"store"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	status := "ok"
	storeStatus := "ok"
	httpStatus := http.StatusOK
	if err := hc.store.Ping(r.Context()); err != nil {
		status = "degraded"
		storeStatus = err.Error()
		httpStatus = http.StatusServiceUnavailable
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        status,
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Store:         storeStatus,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(stateStore store.StateStore) *HealthController {
	return &HealthController{
		store:     stateStore,
		startTime: time.Now(),
	}
}
