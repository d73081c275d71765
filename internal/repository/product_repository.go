package repository

import (
	"database/sql"
	"fmt"

	"github.com/carpetland/crm-backend/internal/model"
)

// ProductRepositoryInterface defines methods used by services
type ProductRepositoryInterface interface {
	UpsertBatch(products []model.Product) error
	ListLowStock(limit int) ([]model.Product, error)
}

type ProductRepository struct {
	DB *sql.DB
}

// UpsertBatch inserts the batch keyed on name, replacing existing rows
// wholesale on conflict. Duplicate names must be collapsed by the caller.
func (r *ProductRepository) UpsertBatch(products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := `INSERT INTO products (name, cost_price, category, default_markup, current_stock, minimum_stock) VALUES `
	args := []interface{}{}
	for i, p := range products {
		if i > 0 {
			query += ", "
		}
		n := i * 6
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6)
		args = append(args, p.Name, p.CostPrice, p.Category, p.DefaultMarkup, p.CurrentStock, p.MinimumStock)
	}
	query += ` ON CONFLICT (name) DO UPDATE
        SET cost_price = EXCLUDED.cost_price,
            category = EXCLUDED.category,
            default_markup = EXCLUDED.default_markup,
            current_stock = EXCLUDED.current_stock,
            minimum_stock = EXCLUDED.minimum_stock`

	_, err := r.DB.Exec(query, args...)
	return err
}

// ListLowStock returns products whose stock has fallen strictly below the
// minimum threshold, alphabetically.
func (r *ProductRepository) ListLowStock(limit int) ([]model.Product, error) {
	query := `
        SELECT id, name, cost_price, category, default_markup, current_stock, minimum_stock, created_at
        FROM products
        WHERE current_stock < minimum_stock
        ORDER BY name
        LIMIT $1
    `
	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CostPrice, &p.Category, &p.DefaultMarkup, &p.CurrentStock, &p.MinimumStock, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
