package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so Migrate can
// run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Source collections. Dates are stored as the text the source supplied so that
// invalid values reach the normalizer unchanged. Project and group references
// are not foreign keys: dangling ids are allowed and display as "Unknown".
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS chapter_groups (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS shifts (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		project_id TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL DEFAULT '',
		tf_start   TEXT,
		tf_end     TEXT,
		tf_rule    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS shift_assignees (
		shift_id TEXT NOT NULL REFERENCES shifts(id) ON DELETE CASCADE,
		user_id  TEXT NOT NULL,
		PRIMARY KEY (shift_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		seq               INTEGER PRIMARY KEY AUTOINCREMENT,
		id                TEXT NOT NULL UNIQUE,
		name              TEXT NOT NULL,
		kind              TEXT NOT NULL DEFAULT 'event',
		group_id          TEXT NOT NULL DEFAULT '',
		project_id        TEXT NOT NULL DEFAULT '',
		location          TEXT NOT NULL DEFAULT '',
		tf_start          TEXT,
		tf_end            TEXT,
		start_date        TEXT NOT NULL DEFAULT '',
		end_date          TEXT NOT NULL DEFAULT '',
		price             REAL,
		tickets_available INTEGER
	)`,

	`CREATE TABLE IF NOT EXISTS event_participants (
		event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		user_id  TEXT NOT NULL,
		PRIMARY KEY (event_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		assignee   TEXT NOT NULL,
		project_id TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL DEFAULT '',
		start_at   TEXT NOT NULL DEFAULT '',
		end_at     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shift_assignees_user ON shift_assignees(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_event_participants_user ON event_participants(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee)`,
}
