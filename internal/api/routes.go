package api

import (
	"net/http"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(k KioskController, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", NewHealthReadyHandler(k.Ready))

	// Room endpoints
	roomHandler := NewRoomHandler(k)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Display mode
	mux.Handle("/api/display", NewDisplayHandler(k))

	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	return mux
}
