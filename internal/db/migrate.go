package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS pantry_items (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		quantity    TEXT NOT NULL DEFAULT '',
		expiry_date TEXT NOT NULL DEFAULT '',
		emoji       TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'fresh'
		            CHECK(status IN ('fresh','expiring','expired')),
		value       REAL,
		category    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS waste_events (
		id         TEXT PRIMARY KEY,
		item_name  TEXT NOT NULL,
		outcome    TEXT NOT NULL CHECK(outcome IN ('eaten','spoiled')),
		deleted_at TEXT NOT NULL,
		value      REAL,
		category   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pantry_items_expiry ON pantry_items(expiry_date)`,
	`CREATE INDEX IF NOT EXISTS idx_waste_events_deleted_at ON waste_events(deleted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_waste_events_category ON waste_events(category)`,
}

// Migrate runs all schema migrations. Statements are idempotent and the
// full list re-runs on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
