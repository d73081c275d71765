// internal/model/product.go
package model

import "time"

type Product struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	CostPrice     float64   `db:"cost_price" json:"cost_price"`
	Category      string    `db:"category" json:"category"`
	DefaultMarkup float64   `db:"default_markup" json:"default_markup"`
	CurrentStock  int       `db:"current_stock" json:"current_stock"`
	MinimumStock  int       `db:"minimum_stock" json:"minimum_stock"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
