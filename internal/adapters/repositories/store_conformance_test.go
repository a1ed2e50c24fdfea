package repositories

import (
	"context"
	"errors"
	"testing"
	"warehouse-route-service/internal/domain"
	"warehouse-route-service/internal/ports"

	"github.com/stretchr/testify/require"
)

func wh(name string, lat, lon float64) domain.Warehouse {
	return domain.Warehouse{Name: name, Coordinates: domain.Coordinates{Lat: lat, Lon: lon}}
}

// runStoreConformance exercises the WarehouseStore contract shared by every adapter.
func runStoreConformance(t *testing.T, store ports.WarehouseStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("unknown session is empty", func(t *testing.T) {
		got, err := store.ListWarehouses(ctx, "missing")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("keeps insertion order and duplicate names", func(t *testing.T) {
		in := []domain.Warehouse{
			wh("W1", 40.0, -75.0),
			wh("W2", 40.1, -75.1),
			wh("W1", 12.5, 45.25),
			wh("W3", 12.5, 45.25),
		}
		for _, w := range in {
			require.NoError(t, store.AddWarehouse(ctx, "order", w))
		}

		got, err := store.ListWarehouses(ctx, "order")
		require.NoError(t, err)
		require.Equal(t, in, got)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		require.NoError(t, store.AddWarehouse(ctx, "a", wh("A", 1, 1)))
		require.NoError(t, store.AddWarehouse(ctx, "b", wh("B", 2, 2)))

		got, err := store.ListWarehouses(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, []domain.Warehouse{wh("A", 1, 1)}, got)
	})

	t.Run("clear removes the working set", func(t *testing.T) {
		require.NoError(t, store.AddWarehouse(ctx, "clear", wh("A", 1, 1)))
		require.NoError(t, store.ClearWarehouses(ctx, "clear"))

		got, err := store.ListWarehouses(ctx, "clear")
		require.NoError(t, err)
		require.Empty(t, got)

		require.NoError(t, store.ClearWarehouses(ctx, "never-existed"))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		err := store.AddWarehouse(ctx, "bad", wh("north", 95, 0))
		require.True(t, errors.Is(err, domain.ErrInvalidCoordinate), "err = %v", err)

		require.Error(t, store.AddWarehouse(ctx, " ", wh("A", 1, 1)))

		_, err = store.ListWarehouses(ctx, "")
		require.Error(t, err)
		require.Error(t, store.ClearWarehouses(ctx, ""))
	})
}
