package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_items (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		kind             TEXT NOT NULL DEFAULT 'task'
		                 CHECK(kind IN ('project','task')),
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		order_index      INTEGER NOT NULL DEFAULT 0,
		progress_percent INTEGER NOT NULL DEFAULT 0
		                 CHECK(progress_percent BETWEEN 0 AND 100),
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_items_order ON schedule_items(order_index)`,

	// depends_on_id carries no foreign key: an edge may outlive its target
	// (the router omits dangling edges instead of failing).
	`CREATE TABLE IF NOT EXISTS item_dependencies (
		item_id       TEXT NOT NULL REFERENCES schedule_items(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL,
		position      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (item_id, depends_on_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_item_dependencies_item ON item_dependencies(item_id)`,
}
