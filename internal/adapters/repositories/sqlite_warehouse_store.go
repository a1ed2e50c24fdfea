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

// SQLite-backed implementation of the WarehouseStore port.
// Rows carry an absolute expiry (unix seconds) that every add refreshes for
// the whole session; expired rows are hidden from reads and removed by
// PurgeExpired.
type SqliteWarehouseStore struct {
	DB  *sql.DB
	TTL time.Duration
	now func() time.Time
}

func NewSqliteWarehouseStore(db *sql.DB, ttl time.Duration) *SqliteWarehouseStore {
	return &SqliteWarehouseStore{DB: db, TTL: ttl, now: time.Now}
}

func (s *SqliteWarehouseStore) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Append a warehouse and extend the session expiry.
func (s *SqliteWarehouseStore) AddWarehouse(ctx context.Context, sessionID string, w domain.Warehouse) (err error) {
	defer obs.Time(ctx, "store.sqlite.AddWarehouse")(&err)

	if s.DB == nil {
		return errors.New("sqlite warehouse store: DB is nil")
	}
	if err := checkAdd(sessionID, w); err != nil {
		return err
	}

	expiresAt := s.clock().Add(s.TTL).Unix()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("add warehouse: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insert := `
	INSERT INTO session_warehouses (
		session_id,
		name,
		lat,
		lon,
		expires_at
	)
	VALUES (?, ?, ?, ?, ?);
	`
	if _, err := tx.ExecContext(ctx, insert, sessionID, w.Name, w.Coordinates.Lat, w.Coordinates.Lon, expiresAt); err != nil {
		return fmt.Errorf("add warehouse: insert %q: %w", w.Name, err)
	}

	touch := `
	UPDATE session_warehouses
	SET expires_at = ?
	WHERE session_id = ?;
	`
	if _, err := tx.ExecContext(ctx, touch, expiresAt, sessionID); err != nil {
		return fmt.Errorf("add warehouse: refresh session expiry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add warehouse: commit: %w", err)
	}

	return nil
}

// Return the live working set of the session in insertion order.
func (s *SqliteWarehouseStore) ListWarehouses(ctx context.Context, sessionID string) (_ []domain.Warehouse, err error) {
	defer obs.Time(ctx, "store.sqlite.ListWarehouses")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite warehouse store: DB is nil")
	}
	if sessionID == "" {
		return nil, errors.New("list warehouses: session id must not be empty")
	}

	query := `
	SELECT
		name,
		lat,
		lon
	FROM session_warehouses
	WHERE session_id = ?
		AND expires_at > ?
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query, sessionID, s.clock().Unix())
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query session_warehouses table: %w", err)
	}
	defer rows.Close()

	return scanWarehouses(rows)
}

func (s *SqliteWarehouseStore) ClearWarehouses(ctx context.Context, sessionID string) (err error) {
	defer obs.Time(ctx, "store.sqlite.ClearWarehouses")(&err)

	if s.DB == nil {
		return errors.New("sqlite warehouse store: DB is nil")
	}
	if sessionID == "" {
		return errors.New("clear warehouses: session id must not be empty")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM session_warehouses WHERE session_id = ?;`, sessionID); err != nil {
		return fmt.Errorf("clear warehouses: session %q: %w", sessionID, err)
	}
	return nil
}

// Delete every expired row and return how many were removed.
func (s *SqliteWarehouseStore) PurgeExpired(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite warehouse store: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM session_warehouses WHERE expires_at <= ?;`, s.clock().Unix())
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge expired: rows affected: %w", err)
	}
	return n, nil
}

func scanWarehouses(rows *sql.Rows) ([]domain.Warehouse, error) {
	out := make([]domain.Warehouse, 0, 16)
	for rows.Next() {
		var rec warehouseRecord
		if err := rows.Scan(&rec.Name, &rec.Lat, &rec.Lon); err != nil {
			return nil, fmt.Errorf("list warehouses: scan row: %w", err)
		}
		out = append(out, rec.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: row iteration: %w", err)
	}

	return out, nil
}
