package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"products", "product_modules", "versions", "requirements", "task_items", "dict_items"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_product_modules_product",
		"idx_product_modules_parent",
		"idx_versions_product_module",
		"idx_requirements_product_module",
		"idx_requirements_version",
		"idx_task_items_product_module",
		"idx_dict_items_type",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_ModuleLevelCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO product_modules (product_id, level, code, name, created_at, updated_at)
		VALUES (1, 4, 'M', 'Too deep', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "level outside 1..3 should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO product_modules (product_id, level, code, name, created_at, updated_at)
		VALUES (1, 1, 'M', 'Root', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_Defaults(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO dict_items (dict_type, dict_code, dict_label, created_at, updated_at)
		VALUES ('priority', 'P1', 'High', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var sortOrder, isActive int
	var remark string
	err = db.QueryRow(`SELECT sort_order, is_active, remark FROM dict_items WHERE dict_code = 'P1'`).
		Scan(&sortOrder, &isActive, &remark)
	require.NoError(t, err)
	assert.Equal(t, 0, sortOrder)
	assert.Equal(t, 1, isActive)
	assert.Equal(t, "", remark)
}
