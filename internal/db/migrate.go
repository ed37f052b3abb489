package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Cross-entity references (module -> product, requirement -> version, ...)
// are checked by the service layer at write time, so the reference columns
// carry no REFERENCES clause.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		code        TEXT NOT NULL,
		name        TEXT NOT NULL,
		owner       TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'ACTIVE',
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS product_modules (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id  INTEGER NOT NULL,
		parent_id   INTEGER,
		level       INTEGER NOT NULL CHECK(level BETWEEN 1 AND 3),
		code        TEXT NOT NULL,
		name        TEXT NOT NULL,
		owner       TEXT NOT NULL DEFAULT '',
		sort_order  INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'ACTIVE',
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_product_modules_product ON product_modules(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_product_modules_parent ON product_modules(parent_id)`,

	`CREATE TABLE IF NOT EXISTS versions (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id          INTEGER NOT NULL,
		module_id           INTEGER NOT NULL,
		version_code        TEXT NOT NULL,
		name                TEXT NOT NULL,
		owner               TEXT NOT NULL,
		plan_release_date   TEXT NOT NULL,
		actual_release_date TEXT,
		status              TEXT NOT NULL DEFAULT 'PLANNED',
		description         TEXT NOT NULL DEFAULT '',
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_versions_product_module ON versions(product_id, module_id)`,

	`CREATE TABLE IF NOT EXISTS requirements (
		id                    INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id            INTEGER NOT NULL,
		module_id             INTEGER NOT NULL,
		code                  TEXT NOT NULL,
		name                  TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		priority              TEXT NOT NULL,
		status                TEXT NOT NULL DEFAULT 'DRAFT',
		version_id            INTEGER NOT NULL,
		owner                 TEXT NOT NULL,
		due_date              TEXT,
		estimate_story_points INTEGER,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_requirements_product_module ON requirements(product_id, module_id)`,
	`CREATE INDEX IF NOT EXISTS idx_requirements_version ON requirements(version_id)`,

	`CREATE TABLE IF NOT EXISTS task_items (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id     INTEGER NOT NULL,
		module_id      INTEGER NOT NULL,
		requirement_id INTEGER NOT NULL,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		assignee       TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'TODO',
		due_date       TEXT,
		estimate_hours INTEGER,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_items_product_module ON task_items(product_id, module_id)`,

	`CREATE TABLE IF NOT EXISTS dict_items (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		dict_type  TEXT NOT NULL,
		dict_code  TEXT NOT NULL,
		dict_label TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active  INTEGER NOT NULL DEFAULT 1,
		remark     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dict_items_type ON dict_items(dict_type, sort_order)`,
}
