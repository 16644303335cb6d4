package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// ProfileID is the fixed key of the single stored profile.
const ProfileID = 1

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profile (
		id            INTEGER PRIMARY KEY CHECK(id = 1),
		employee_name TEXT NOT NULL DEFAULT '',
		client_name   TEXT NOT NULL DEFAULT '',
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS profile_signature (
		profile_id INTEGER PRIMARY KEY REFERENCES profile(id) ON DELETE CASCADE,
		mime       TEXT NOT NULL DEFAULT '',
		data       BLOB NOT NULL
	)`,
}
