package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
)

const requirementColumns = `id, product_id, module_id, code, name, description, priority, status,
		version_id, owner, due_date, estimate_story_points, created_at, updated_at`

// SQLiteRequirementRepo implements RequirementRepo using a SQLite database.
type SQLiteRequirementRepo struct {
	db db.DBTX
}

// NewSQLiteRequirementRepo creates a new SQLiteRequirementRepo.
func NewSQLiteRequirementRepo(conn db.DBTX) *SQLiteRequirementRepo {
	return &SQLiteRequirementRepo{db: conn}
}

func (r *SQLiteRequirementRepo) Create(ctx context.Context, req *domain.Requirement) error {
	query := `INSERT INTO requirements (product_id, module_id, code, name, description, priority, status,
		version_id, owner, due_date, estimate_story_points, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		req.ProductID,
		req.ModuleID,
		req.Code,
		req.Name,
		req.Description,
		req.Priority,
		req.Status,
		req.VersionID,
		req.Owner,
		nullableDateToString(req.DueDate),
		nullableIntToValue(req.EstimateStoryPoints),
		formatTimestamp(req.CreatedAt),
		formatTimestamp(req.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting requirement: %w", err)
	}
	if req.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading requirement id: %w", err)
	}
	return nil
}

func (r *SQLiteRequirementRepo) GetByID(ctx context.Context, id int64) (*domain.Requirement, error) {
	query := `SELECT ` + requirementColumns + ` FROM requirements WHERE id = ?`
	return r.scanRequirement(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRequirementRepo) List(ctx context.Context, f ScopeFilter) ([]*domain.Requirement, error) {
	var where whereClause
	where.eqInt64("product_id", f.ProductID)
	where.eqInt64("module_id", f.ModuleID)

	query := `SELECT ` + requirementColumns + ` FROM requirements` + where.String() + ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("listing requirements: %w", err)
	}
	defer rows.Close()
	return collect(rows, "requirements", r.scanRequirement)
}

// ExistsByVersionID reports whether any requirement is scheduled into the
// given version.
func (r *SQLiteRequirementRepo) ExistsByVersionID(ctx context.Context, versionID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM requirements WHERE version_id = ?)`, versionID)
	return exists(row, "requirement by version")
}

func (r *SQLiteRequirementRepo) ExistsByModuleID(ctx context.Context, moduleID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM requirements WHERE module_id = ?)`, moduleID)
	return exists(row, "requirement by module")
}

func (r *SQLiteRequirementRepo) Update(ctx context.Context, req *domain.Requirement) error {
	query := `UPDATE requirements SET product_id = ?, module_id = ?, name = ?, description = ?,
		priority = ?, status = ?, version_id = ?, owner = ?, due_date = ?, estimate_story_points = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		req.ProductID,
		req.ModuleID,
		req.Name,
		req.Description,
		req.Priority,
		req.Status,
		req.VersionID,
		req.Owner,
		nullableDateToString(req.DueDate),
		nullableIntToValue(req.EstimateStoryPoints),
		formatTimestamp(req.UpdatedAt),
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("updating requirement: %w", err)
	}
	return requireAffected(res, "requirement")
}

func (r *SQLiteRequirementRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM requirements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting requirement: %w", err)
	}
	return requireAffected(res, "requirement")
}

func (r *SQLiteRequirementRepo) scanRequirement(row rowScanner) (*domain.Requirement, error) {
	var req domain.Requirement
	var dueDate sql.NullString
	var points sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&req.ID, &req.ProductID, &req.ModuleID, &req.Code, &req.Name, &req.Description,
		&req.Priority, &req.Status, &req.VersionID, &req.Owner, &dueDate, &points,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, scanErr("requirement", err)
	}

	req.DueDate = parseNullableDate(dueDate)
	req.EstimateStoryPoints = intFromNull(points)
	req.CreatedAt, req.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
