package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// collect scans every row with scan and closes nothing; callers own rows.
func collect[T any](rows *sql.Rows, what string, scan func(rowScanner) (*T, error)) ([]*T, error) {
	var out []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", what, err)
	}
	return out, nil
}

// scanErr maps sql.ErrNoRows to ErrNotFound and wraps anything else.
func scanErr(what string, err error) error {
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("scanning %s: %w", what, err)
}

// requireAffected returns ErrNotFound when res touched no rows.
func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows for %s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// whereClause accumulates optional equality filters.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) eqInt64(col string, v *int64) {
	if v == nil {
		return
	}
	w.conds = append(w.conds, col+" = ?")
	w.args = append(w.args, *v)
}

func (w *whereClause) eqString(col string, v string) {
	if v == "" {
		return
	}
	w.conds = append(w.conds, col+" = ?")
	w.args = append(w.args, v)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// parseNullableDate parses a sql.NullString into a *domain.Date.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableDate(s sql.NullString) *domain.Date {
	if !s.Valid || s.String == "" {
		return nil
	}
	d, err := domain.ParseDate(s.String)
	if err != nil {
		return nil
	}
	return &d
}

// nullableDateToString converts a *domain.Date to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableDateToString(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the int value.
func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt64ToValue(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func int64FromNull(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTimestamps parses the created_at/updated_at pair shared by every table.
func parseTimestamps(createdAtStr, updatedAtStr string) (createdAt, updatedAt time.Time, err error) {
	createdAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return createdAt, updatedAt, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return createdAt, updatedAt, fmt.Errorf("parsing updated_at: %w", err)
	}
	return createdAt, updatedAt, nil
}

// exists runs a SELECT EXISTS query and returns its boolean result.
func exists(row *sql.Row, what string) (bool, error) {
	var found int
	if err := row.Scan(&found); err != nil {
		return false, fmt.Errorf("checking %s existence: %w", what, err)
	}
	return found != 0, nil
}
