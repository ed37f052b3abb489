package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
)

const productColumns = `id, code, name, owner, status, description, created_at, updated_at`

// SQLiteProductRepo implements ProductRepo using a SQLite database.
type SQLiteProductRepo struct {
	db db.DBTX
}

// NewSQLiteProductRepo creates a new SQLiteProductRepo.
func NewSQLiteProductRepo(conn db.DBTX) *SQLiteProductRepo {
	return &SQLiteProductRepo{db: conn}
}

func (r *SQLiteProductRepo) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (code, name, owner, status, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Code,
		p.Name,
		p.Owner,
		p.Status,
		p.Description,
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading product id: %w", err)
	}
	return nil
}

func (r *SQLiteProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProductRepo) Exists(ctx context.Context, id int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = ?)`, id)
	return exists(row, "product")
}

func (r *SQLiteProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()
	return collect(rows, "products", r.scanProduct)
}

func (r *SQLiteProductRepo) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET code = ?, name = ?, owner = ?, status = ?, description = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Code,
		p.Name,
		p.Owner,
		p.Status,
		p.Description,
		formatTimestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return requireAffected(res, "product")
}

func (r *SQLiteProductRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return requireAffected(res, "product")
}

func (r *SQLiteProductRepo) scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Owner, &p.Status, &p.Description,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, scanErr("product", err)
	}

	p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
