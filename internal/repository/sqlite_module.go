package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
)

// moduleColumns is the canonical SELECT column list for product_modules.
const moduleColumns = `id, product_id, parent_id, level, code, name, owner, sort_order,
		status, description, created_at, updated_at`

// SQLiteModuleRepo implements ModuleRepo using a SQLite database.
type SQLiteModuleRepo struct {
	db db.DBTX
}

// NewSQLiteModuleRepo creates a new SQLiteModuleRepo.
func NewSQLiteModuleRepo(conn db.DBTX) *SQLiteModuleRepo {
	return &SQLiteModuleRepo{db: conn}
}

func (r *SQLiteModuleRepo) Create(ctx context.Context, m *domain.ProductModule) error {
	query := `INSERT INTO product_modules (product_id, parent_id, level, code, name, owner, sort_order,
		status, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		m.ProductID,
		nullableInt64ToValue(m.ParentID),
		m.Level,
		m.Code,
		m.Name,
		m.Owner,
		m.SortOrder,
		m.Status,
		m.Description,
		formatTimestamp(m.CreatedAt),
		formatTimestamp(m.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting product module: %w", err)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading product module id: %w", err)
	}
	return nil
}

func (r *SQLiteModuleRepo) GetByID(ctx context.Context, id int64) (*domain.ProductModule, error) {
	query := `SELECT ` + moduleColumns + ` FROM product_modules WHERE id = ?`
	return r.scanModule(r.db.QueryRowContext(ctx, query, id))
}

// List returns modules ordered for tree display: by level, then the
// configured sort order, then creation order.
func (r *SQLiteModuleRepo) List(ctx context.Context, f ModuleFilter) ([]*domain.ProductModule, error) {
	var where whereClause
	where.eqInt64("product_id", f.ProductID)
	where.eqInt64("parent_id", f.ParentID)

	query := `SELECT ` + moduleColumns + ` FROM product_modules` + where.String() +
		` ORDER BY level, sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("listing product modules: %w", err)
	}
	defer rows.Close()
	return collect(rows, "product modules", r.scanModule)
}

func (r *SQLiteModuleRepo) HasChildren(ctx context.Context, id int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM product_modules WHERE parent_id = ?)`, id)
	return exists(row, "child module")
}

func (r *SQLiteModuleRepo) Update(ctx context.Context, m *domain.ProductModule) error {
	query := `UPDATE product_modules SET product_id = ?, parent_id = ?, level = ?, code = ?, name = ?,
		owner = ?, sort_order = ?, status = ?, description = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.ProductID,
		nullableInt64ToValue(m.ParentID),
		m.Level,
		m.Code,
		m.Name,
		m.Owner,
		m.SortOrder,
		m.Status,
		m.Description,
		formatTimestamp(m.UpdatedAt),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product module: %w", err)
	}
	return requireAffected(res, "product module")
}

func (r *SQLiteModuleRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product_modules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product module: %w", err)
	}
	return requireAffected(res, "product module")
}

func (r *SQLiteModuleRepo) scanModule(row rowScanner) (*domain.ProductModule, error) {
	var m domain.ProductModule
	var parentID sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&m.ID, &m.ProductID, &parentID, &m.Level, &m.Code, &m.Name, &m.Owner,
		&m.SortOrder, &m.Status, &m.Description, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, scanErr("product module", err)
	}

	m.ParentID = int64FromNull(parentID)
	m.CreatedAt, m.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
