package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"warehouse-route-service/internal/domain"
	"warehouse-route-service/internal/platform/obs"
)

// SQLWarehouseStore is a PostgreSQL-backed WarehouseStore (pgx stdlib driver).
// Expiry semantics match SqliteWarehouseStore.
type SQLWarehouseStore struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLWarehouseStore(db *sql.DB, ttl time.Duration) *SQLWarehouseStore {
	return &SQLWarehouseStore{DB: db, TTL: ttl}
}

func (s *SQLWarehouseStore) AddWarehouse(ctx context.Context, sessionID string, w domain.Warehouse) (err error) {
	defer obs.Time(ctx, "store.postgres.AddWarehouse")(&err)

	if s.DB == nil {
		return errors.New("sql warehouse store: db is nil")
	}
	if err := checkAdd(sessionID, w); err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.TTL).Unix()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("add warehouse: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO session_warehouses (session_id, name, lat, lon, expires_at)
	VALUES ($1, $2, $3, $4, $5);
	`, sessionID, w.Name, w.Coordinates.Lat, w.Coordinates.Lon, expiresAt); err != nil {
		return fmt.Errorf("add warehouse: insert %q: %w", w.Name, err)
	}

	if _, err := tx.ExecContext(ctx, `
	UPDATE session_warehouses
	SET expires_at = $1
	WHERE session_id = $2;
	`, expiresAt, sessionID); err != nil {
		return fmt.Errorf("add warehouse: refresh session expiry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add warehouse: commit: %w", err)
	}

	return nil
}

func (s *SQLWarehouseStore) ListWarehouses(ctx context.Context, sessionID string) (_ []domain.Warehouse, err error) {
	defer obs.Time(ctx, "store.postgres.ListWarehouses")(&err)

	if s.DB == nil {
		return nil, errors.New("sql warehouse store: db is nil")
	}
	if sessionID == "" {
		return nil, errors.New("list warehouses: session id must not be empty")
	}

	q := `
	SELECT name, lat, lon
	FROM session_warehouses
	WHERE session_id = $1
		AND expires_at > $2
	ORDER BY id;
	`

	rows, err := s.DB.QueryContext(ctx, q, sessionID, time.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query session_warehouses table: %w", err)
	}
	defer rows.Close()

	return scanWarehouses(rows)
}

func (s *SQLWarehouseStore) ClearWarehouses(ctx context.Context, sessionID string) (err error) {
	defer obs.Time(ctx, "store.postgres.ClearWarehouses")(&err)

	if s.DB == nil {
		return errors.New("sql warehouse store: db is nil")
	}
	if sessionID == "" {
		return errors.New("clear warehouses: session id must not be empty")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM session_warehouses WHERE session_id = $1;`, sessionID); err != nil {
		return fmt.Errorf("clear warehouses: session %q: %w", sessionID, err)
	}
	return nil
}

func (s *SQLWarehouseStore) PurgeExpired(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sql warehouse store: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM session_warehouses WHERE expires_at <= $1;`, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge expired: rows affected: %w", err)
	}
	return n, nil
}
