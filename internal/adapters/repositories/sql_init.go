package repositories

import (
	"database/sql"
	"errors"
)

// Initialize the PostgreSQL database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: db is nil")
	}

	return execSchema(db, []string{
		`
		CREATE TABLE IF NOT EXISTS session_warehouses (
			id BIGSERIAL PRIMARY KEY,
			session_id TEXT NOT NULL,
			name TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
			lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180),
			expires_at BIGINT NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_session_warehouses_session
		ON session_warehouses(session_id, id);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_session_warehouses_expires_at
		ON session_warehouses(expires_at);
		`,
	})
}
