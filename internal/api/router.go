package api

import (
	"context"
	"net/http"
	"warehouse-route-service/internal/api/handlers"
	"warehouse-route-service/internal/ports"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(store ports.WarehouseStore) http.Handler {
	mux := http.NewServeMux()

	warehouseHandler := &handlers.WarehouseHandler{Store: store}
	routeHandler := &handlers.RouteHandler{Store: store}
	healthHandler := &handlers.HealthHandler{}
	if p, ok := store.(pinger); ok {
		healthHandler.Check = p.Ping
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/sessions", handlers.CreateSession)
	mux.HandleFunc("/sessions/{id}/warehouses", warehouseHandler.Warehouses)
	mux.HandleFunc("/sessions/{id}/route", routeHandler.SessionRoute)
	mux.HandleFunc("/sessions/{id}/map", routeHandler.Map)
	mux.HandleFunc("/routes", routeHandler.Route)

	return requestIDMiddleware(loggingMiddleware(mux))
}
