package api

import (
	"grid-route-client/internal/api/handlers"
	"grid-route-client/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// routeLog may be nil to disable query history.
func NewRouter(provider ports.RouteProvider, routeLog ports.RouteLog) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Provider: provider,
		Log:      routeLog,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/snap", routeHandler.Snap)
	mux.HandleFunc("/route", routeHandler.Route)
	mux.HandleFunc("/journey", routeHandler.Journey)
	mux.HandleFunc("/history", routeHandler.History)

	return requestIDMiddleware(loggingMiddleware(mux))
}
