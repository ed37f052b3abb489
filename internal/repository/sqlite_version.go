package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
)

const versionColumns = `id, product_id, module_id, version_code, name, owner,
		plan_release_date, actual_release_date, status, description, created_at, updated_at`

// SQLiteVersionRepo implements VersionRepo using a SQLite database.
type SQLiteVersionRepo struct {
	db db.DBTX
}

// NewSQLiteVersionRepo creates a new SQLiteVersionRepo.
func NewSQLiteVersionRepo(conn db.DBTX) *SQLiteVersionRepo {
	return &SQLiteVersionRepo{db: conn}
}

func (r *SQLiteVersionRepo) Create(ctx context.Context, v *domain.VersionInfo) error {
	query := `INSERT INTO versions (product_id, module_id, version_code, name, owner,
		plan_release_date, actual_release_date, status, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		v.ProductID,
		v.ModuleID,
		v.VersionCode,
		v.Name,
		v.Owner,
		v.PlanReleaseDate.String(),
		nullableDateToString(v.ActualReleaseDate),
		v.Status,
		v.Description,
		formatTimestamp(v.CreatedAt),
		formatTimestamp(v.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting version: %w", err)
	}
	if v.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading version id: %w", err)
	}
	return nil
}

func (r *SQLiteVersionRepo) GetByID(ctx context.Context, id int64) (*domain.VersionInfo, error) {
	query := `SELECT ` + versionColumns + ` FROM versions WHERE id = ?`
	return r.scanVersion(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteVersionRepo) Exists(ctx context.Context, id int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM versions WHERE id = ?)`, id)
	return exists(row, "version")
}

func (r *SQLiteVersionRepo) List(ctx context.Context, f ScopeFilter) ([]*domain.VersionInfo, error) {
	var where whereClause
	where.eqInt64("product_id", f.ProductID)
	where.eqInt64("module_id", f.ModuleID)

	query := `SELECT ` + versionColumns + ` FROM versions` + where.String() + ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	defer rows.Close()
	return collect(rows, "versions", r.scanVersion)
}

func (r *SQLiteVersionRepo) ExistsByModuleID(ctx context.Context, moduleID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM versions WHERE module_id = ?)`, moduleID)
	return exists(row, "version by module")
}

func (r *SQLiteVersionRepo) Update(ctx context.Context, v *domain.VersionInfo) error {
	query := `UPDATE versions SET product_id = ?, module_id = ?, version_code = ?, name = ?, owner = ?,
		plan_release_date = ?, actual_release_date = ?, status = ?, description = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		v.ProductID,
		v.ModuleID,
		v.VersionCode,
		v.Name,
		v.Owner,
		v.PlanReleaseDate.String(),
		nullableDateToString(v.ActualReleaseDate),
		v.Status,
		v.Description,
		formatTimestamp(v.UpdatedAt),
		v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating version: %w", err)
	}
	return requireAffected(res, "version")
}

func (r *SQLiteVersionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM versions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting version: %w", err)
	}
	return requireAffected(res, "version")
}

func (r *SQLiteVersionRepo) scanVersion(row rowScanner) (*domain.VersionInfo, error) {
	var v domain.VersionInfo
	var planStr, createdAtStr, updatedAtStr string
	var actualStr sql.NullString

	err := row.Scan(
		&v.ID, &v.ProductID, &v.ModuleID, &v.VersionCode, &v.Name, &v.Owner,
		&planStr, &actualStr, &v.Status, &v.Description, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, scanErr("version", err)
	}

	if v.PlanReleaseDate, err = domain.ParseDate(planStr); err != nil {
		return nil, fmt.Errorf("parsing plan_release_date: %w", err)
	}
	v.ActualReleaseDate = parseNullableDate(actualStr)
	v.CreatedAt, v.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
