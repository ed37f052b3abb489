package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
)

const taskColumns = `id, product_id, module_id, requirement_id, title, description, assignee,
		status, due_date, estimate_hours, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.TaskItem) error {
	query := `INSERT INTO task_items (product_id, module_id, requirement_id, title, description, assignee,
		status, due_date, estimate_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.ProductID,
		t.ModuleID,
		t.RequirementID,
		t.Title,
		t.Description,
		t.Assignee,
		t.Status,
		nullableDateToString(t.DueDate),
		nullableIntToValue(t.EstimateHours),
		formatTimestamp(t.CreatedAt),
		formatTimestamp(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id int64) (*domain.TaskItem, error) {
	query := `SELECT ` + taskColumns + ` FROM task_items WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) List(ctx context.Context, f ScopeFilter) ([]*domain.TaskItem, error) {
	var where whereClause
	where.eqInt64("product_id", f.ProductID)
	where.eqInt64("module_id", f.ModuleID)

	query := `SELECT ` + taskColumns + ` FROM task_items` + where.String() + ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return collect(rows, "tasks", r.scanTask)
}

func (r *SQLiteTaskRepo) ExistsByModuleID(ctx context.Context, moduleID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM task_items WHERE module_id = ?)`, moduleID)
	return exists(row, "task by module")
}

// ExistsByRequirementID reports whether any task is filed under the given
// requirement.
func (r *SQLiteTaskRepo) ExistsByRequirementID(ctx context.Context, requirementID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM task_items WHERE requirement_id = ?)`, requirementID)
	return exists(row, "task by requirement")
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.TaskItem) error {
	query := `UPDATE task_items SET product_id = ?, module_id = ?, title = ?, description = ?,
		assignee = ?, status = ?, due_date = ?, estimate_hours = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.ProductID,
		t.ModuleID,
		t.Title,
		t.Description,
		t.Assignee,
		t.Status,
		nullableDateToString(t.DueDate),
		nullableIntToValue(t.EstimateHours),
		formatTimestamp(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) scanTask(row rowScanner) (*domain.TaskItem, error) {
	var t domain.TaskItem
	var dueDate sql.NullString
	var hours sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.ProductID, &t.ModuleID, &t.RequirementID, &t.Title, &t.Description,
		&t.Assignee, &t.Status, &dueDate, &hours, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, scanErr("task", err)
	}

	t.DueDate = parseNullableDate(dueDate)
	t.EstimateHours = intFromNull(hours)
	t.CreatedAt, t.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
