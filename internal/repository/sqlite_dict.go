package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
)

const dictColumns = `id, dict_type, dict_code, dict_label, sort_order, is_active, remark, created_at, updated_at`

// SQLiteDictRepo implements DictRepo using a SQLite database.
type SQLiteDictRepo struct {
	db db.DBTX
}

// NewSQLiteDictRepo creates a new SQLiteDictRepo.
func NewSQLiteDictRepo(conn db.DBTX) *SQLiteDictRepo {
	return &SQLiteDictRepo{db: conn}
}

func (r *SQLiteDictRepo) Create(ctx context.Context, d *domain.DictItem) error {
	query := `INSERT INTO dict_items (dict_type, dict_code, dict_label, sort_order, is_active, remark,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		d.DictType,
		d.DictCode,
		d.DictLabel,
		d.SortOrder,
		d.IsActive,
		d.Remark,
		formatTimestamp(d.CreatedAt),
		formatTimestamp(d.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting dict item: %w", err)
	}
	if d.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading dict item id: %w", err)
	}
	return nil
}

func (r *SQLiteDictRepo) GetByID(ctx context.Context, id int64) (*domain.DictItem, error) {
	query := `SELECT ` + dictColumns + ` FROM dict_items WHERE id = ?`
	return r.scanDict(r.db.QueryRowContext(ctx, query, id))
}

// List returns dictionary items, optionally restricted to one dictType.
func (r *SQLiteDictRepo) List(ctx context.Context, dictType string) ([]*domain.DictItem, error) {
	var where whereClause
	where.eqString("dict_type", dictType)

	query := `SELECT ` + dictColumns + ` FROM dict_items` + where.String() +
		` ORDER BY dict_type, sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("listing dict items: %w", err)
	}
	defer rows.Close()
	return collect(rows, "dict items", r.scanDict)
}

func (r *SQLiteDictRepo) Update(ctx context.Context, d *domain.DictItem) error {
	query := `UPDATE dict_items SET dict_type = ?, dict_code = ?, dict_label = ?, sort_order = ?,
		is_active = ?, remark = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.DictType,
		d.DictCode,
		d.DictLabel,
		d.SortOrder,
		d.IsActive,
		d.Remark,
		formatTimestamp(d.UpdatedAt),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating dict item: %w", err)
	}
	return requireAffected(res, "dict item")
}

func (r *SQLiteDictRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dict_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting dict item: %w", err)
	}
	return requireAffected(res, "dict item")
}

func (r *SQLiteDictRepo) scanDict(row rowScanner) (*domain.DictItem, error) {
	var d domain.DictItem
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&d.ID, &d.DictType, &d.DictCode, &d.DictLabel, &d.SortOrder, &d.IsActive, &d.Remark,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, scanErr("dict item", err)
	}

	d.CreatedAt, d.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
