package repositories

import (
	"context"
	"fmt"
	"warehouse-route-service/internal/config"
	"warehouse-route-service/internal/platform/db"
	"warehouse-route-service/internal/platform/kv"
	"warehouse-route-service/internal/ports"
)

// Store is a WarehouseStore opened from configuration together with the
// connection it owns.
type Store struct {
	ports.WarehouseStore
	Driver string

	close func() error
	ping  func(ctx context.Context) error
}

type expiryPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// OpenStore connects the backend selected by cfg.StoreDriver. SQL backends
// get their schema created when missing.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return &Store{
			WarehouseStore: NewMemoryWarehouseStore(cfg.SessionTTL),
			Driver:         cfg.StoreDriver,
		}, nil

	case config.DriverRedis:
		client, err := kv.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Store{
			WarehouseStore: NewRedisWarehouseStore(client, cfg.SessionTTL),
			Driver:         cfg.StoreDriver,
			close:          client.Close,
			ping:           func(ctx context.Context) error { return client.Ping(ctx).Err() },
		}, nil

	case config.DriverPostgres:
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		if err := InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Store{
			WarehouseStore: NewSQLWarehouseStore(conn, cfg.SessionTTL),
			Driver:         cfg.StoreDriver,
			close:          conn.Close,
			ping:           conn.PingContext,
		}, nil

	case config.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		if err := InitSchema(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Store{
			WarehouseStore: NewSqliteWarehouseStore(conn, cfg.SessionTTL),
			Driver:         cfg.StoreDriver,
			close:          conn.Close,
			ping:           conn.PingContext,
		}, nil

	default:
		return nil, fmt.Errorf("open store: unknown driver %q", cfg.StoreDriver)
	}
}

// PurgeExpired drops expired sessions. Redis expires keys on its own, so
// for that backend it is a no-op.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	p, ok := s.WarehouseStore.(expiryPurger)
	if !ok {
		return 0, nil
	}
	return p.PurgeExpired(ctx)
}

// Ping reports whether the backing connection is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	if err := s.ping(ctx); err != nil {
		return fmt.Errorf("ping %s store: %w", s.Driver, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
