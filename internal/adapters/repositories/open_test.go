package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"
	"warehouse-route-service/internal/config"
	"warehouse-route-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreDrivers(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  config.Config
		want any
	}{
		{
			name: "memory",
			cfg:  config.Config{StoreDriver: config.DriverMemory, SessionTTL: time.Hour},
			want: &MemoryWarehouseStore{},
		},
		{
			name: "redis",
			cfg:  config.Config{StoreDriver: config.DriverRedis, RedisURL: "redis://" + mr.Addr(), SessionTTL: time.Hour},
			want: &RedisWarehouseStore{},
		},
		{
			name: "sqlite",
			cfg:  config.Config{StoreDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "app.db"), SessionTTL: time.Hour},
			want: &SqliteWarehouseStore{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := tt.cfg

			store, err := OpenStore(ctx, &cfg)
			require.NoError(t, err)
			t.Cleanup(func() { require.NoError(t, store.Close()) })

			require.IsType(t, tt.want, store.WarehouseStore)
			require.Equal(t, tt.cfg.StoreDriver, store.Driver)
			require.NoError(t, store.Ping(ctx))

			w, err := domain.NewWarehouse("W1", 40, -75)
			require.NoError(t, err)
			require.NoError(t, store.AddWarehouse(ctx, "s1", w))

			got, err := store.ListWarehouses(ctx, "s1")
			require.NoError(t, err)
			require.Equal(t, []domain.Warehouse{w}, got)

			purged, err := store.PurgeExpired(ctx)
			require.NoError(t, err)
			require.Zero(t, purged)
		})
	}
}

func TestOpenStoreErrors(t *testing.T) {
	ctx := context.Background()

	_, err := OpenStore(ctx, &config.Config{StoreDriver: "etcd"})
	require.ErrorContains(t, err, "unknown driver")

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenStore(ctx, &config.Config{StoreDriver: config.DriverRedis, RedisURL: "redis://" + addr})
	require.Error(t, err)
}

func TestStorePingReportsOutage(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store, err := OpenStore(ctx, &config.Config{StoreDriver: config.DriverRedis, RedisURL: "redis://" + mr.Addr(), SessionTTL: time.Hour})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	mr.Close()
	require.ErrorContains(t, store.Ping(ctx), "ping redis store")
}
