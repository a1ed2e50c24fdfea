package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"warehouse-route-service/internal/domain"
	"warehouse-route-service/internal/ports"
)

type WarehouseSeed struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Populate a session working set with warehouses from a JSON file.
// The whole file is validated before anything is written. Returns the number
// of warehouses added.
func SeedFromJSON(ctx context.Context, store ports.WarehouseStore, sessionID string, jsonPath string) (int, error) {
	if store == nil {
		return 0, errors.New("seed warehouses: store is nil")
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed warehouses: read %q: %w", jsonPath, err)
	}

	var data []WarehouseSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed warehouses: parse json: %w", err)
	}

	rows := make([]domain.Warehouse, 0, len(data))
	for i, item := range data {
		w, err := domain.NewWarehouse(item.Name, item.Latitude, item.Longitude)
		if err != nil {
			return 0, fmt.Errorf("seed warehouses: item at index %d: %w", i+1, err)
		}
		rows = append(rows, w)
	}

	for _, w := range rows {
		if err := store.AddWarehouse(ctx, sessionID, w); err != nil {
			return 0, fmt.Errorf("seed warehouses: add %q: %w", w.Name, err)
		}
	}

	return len(rows), nil
}
