package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS session_warehouses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		expires_at INTEGER NOT NULL
	);
	`

	createSessionIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_session_warehouses_session
	ON session_warehouses(session_id, id);
	`

	createExpiryIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_session_warehouses_expires_at
	ON session_warehouses(expires_at);
	`

	return execSchema(db, []string{
		createWarehousesQuery,
		createSessionIndexQuery,
		createExpiryIndexQuery,
	})
}

func execSchema(db *sql.DB, statements []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
