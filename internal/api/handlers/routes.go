package handlers

import (
	"net/http"
	"warehouse-route-service/internal/adapters/maplayer"
	"warehouse-route-service/internal/api/dto"
	"warehouse-route-service/internal/domain"
	"warehouse-route-service/internal/ports"
	"warehouse-route-service/internal/services"
)

// RouteHandler exposes nearest-neighbor route planning, either over a
// session working set or over warehouses posted in the request.
type RouteHandler struct {
	Store ports.WarehouseStore
}

// SessionRoute plans the route for the session's current working set.
func (h *RouteHandler) SessionRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	plan, ok := h.plan(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SessionRouteResponse{
		SessionID:  plan.SessionID,
		Warehouses: dto.NewWarehouseResponses(plan.Warehouses),
		Route:      dto.NewRouteResponse(plan.Route),
		Info:       plan.Info,
	})
}

// Map returns the session's markers and route polyline as GeoJSON.
func (h *RouteHandler) Map(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	plan, ok := h.plan(w, r)
	if !ok {
		return
	}

	fc := maplayer.RouteFeatureCollection(plan.Warehouses, plan.Route)
	writeEncoded(w, r, http.StatusOK, "application/geo+json", fc)
}

// Route plans a route over the warehouses in the request body without
// touching any session.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.RouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	points := make([]domain.Warehouse, 0, len(req.Warehouses))
	for _, row := range req.Warehouses {
		wh, ok := toWarehouse(w, r, row)
		if !ok {
			return
		}
		points = append(points, wh)
	}

	route, err := services.PlanRoute(points, req.StartIndex)
	if err != nil {
		writeRouteError(w, r, "plan route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(route))
}

func (h *RouteHandler) plan(w http.ResponseWriter, r *http.Request) (*domain.RoutePlan, bool) {
	id, ok := sessionID(w, r)
	if !ok {
		return nil, false
	}

	start, ok := startIndex(w, r)
	if !ok {
		return nil, false
	}

	plan, err := services.PlanSessionRoute(r.Context(), h.Store, id, start)
	if err != nil {
		writeRouteError(w, r, "plan session route", err)
		return nil, false
	}
	return plan, true
}
