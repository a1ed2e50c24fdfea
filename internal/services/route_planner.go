package services

import (
	"context"
	"errors"
	"fmt"
	"warehouse-route-service/internal/domain"
	"warehouse-route-service/internal/platform/obs"
	"warehouse-route-service/internal/ports"
)

// MinRouteWarehouses is the smallest working set for which a tour is shown.
const MinRouteWarehouses = 2

// InfoNeedMoreWarehouses is returned in RoutePlan.Info below MinRouteWarehouses.
const InfoNeedMoreWarehouses = "Please enter at least 2 warehouses to compute optimized path."

// PlanRoute builds the distance graph for points and computes the
// nearest-neighbor tour from start.
func PlanRoute(points []domain.Warehouse, start int) (*domain.Route, error) {
	g, err := BuildGraph(points)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	route, err := ComputeRoute(g, start)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}
	return route, nil
}

// PlanSessionRoute loads the working set of sessionID and plans its route.
//
// Fewer than MinRouteWarehouses warehouses is an informational state, not an
// error: the plan carries the warehouses, a nil Route and InfoNeedMoreWarehouses.
func PlanSessionRoute(
	ctx context.Context,
	store ports.WarehouseStore,
	sessionID string,
	start int,
) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "route.PlanSessionRoute")(&err)

	if store == nil {
		return nil, errors.New("plan session route: store must be non-nil")
	}

	if sessionID == "" {
		return nil, errors.New("plan session route: sessionID must be non-empty")
	}

	warehouses, err := store.ListWarehouses(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("plan session route: list warehouses for session %q: %w", sessionID, err)
	}

	plan := &domain.RoutePlan{
		SessionID:  sessionID,
		Warehouses: warehouses,
	}

	if len(warehouses) < MinRouteWarehouses {
		plan.Info = InfoNeedMoreWarehouses
		return plan, nil
	}

	route, err := PlanRoute(warehouses, start)
	if err != nil {
		return nil, fmt.Errorf("plan session route: session %q: %w", sessionID, err)
	}
	plan.Route = route

	return plan, nil
}
