package ports

import (
	"context"
	"warehouse-route-service/internal/domain"
)

// Port: a boundary for the per-session working set of entered warehouses.
//
// Implementations keep insertion order, never deduplicate by name and drop a
// session's rows once its TTL elapses without a new add.
type WarehouseStore interface {
	// Append a warehouse to the session working set.
	AddWarehouse(ctx context.Context, sessionID string, w domain.Warehouse) error
	// Return the session working set in insertion order. Unknown or expired
	// sessions yield an empty slice.
	ListWarehouses(ctx context.Context, sessionID string) ([]domain.Warehouse, error)
	// Remove every warehouse of the session.
	ClearWarehouses(ctx context.Context, sessionID string) error
}
