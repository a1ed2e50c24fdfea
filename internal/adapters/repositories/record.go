package repositories

import (
	"fmt"
	"strings"
	"warehouse-route-service/internal/domain"
)

// warehouseRecord is the serialized form of a warehouse in session stores.
type warehouseRecord struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func toRecord(w domain.Warehouse) warehouseRecord {
	return warehouseRecord{Name: w.Name, Lat: w.Coordinates.Lat, Lon: w.Coordinates.Lon}
}

func (r warehouseRecord) toDomain() domain.Warehouse {
	return domain.Warehouse{
		Name:        r.Name,
		Coordinates: domain.Coordinates{Lat: r.Lat, Lon: r.Lon},
	}
}

// checkAdd validates the arguments shared by every AddWarehouse implementation.
func checkAdd(sessionID string, w domain.Warehouse) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("add warehouse: session id must not be empty")
	}
	if err := w.Validate(-1); err != nil {
		return fmt.Errorf("add warehouse: %w", err)
	}
	return nil
}
