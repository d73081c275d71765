package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/carpetland/crm-backend/internal/model"
)

// CustomerRepositoryInterface defines methods used by services
type CustomerRepositoryInterface interface {
	GetByID(id int) (*model.Customer, error)
	FindByEmail(email string) (*model.Customer, error)
	Create(c *model.Customer) error
	UpsertBatch(customers []model.Customer) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	query := `
        SELECT id, name, email, phone, address, created_at
        FROM customers
        WHERE id = $1
    `
	row := r.DB.QueryRow(query, id)

	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &c, nil
}

// FindByEmail returns the first customer with the given email. Email carries
// a unique constraint, but an accidental duplicate must not error: LIMIT 1
// keeps the first match.
func (r *CustomerRepository) FindByEmail(email string) (*model.Customer, error) {
	query := `
        SELECT id, name, email, phone, address, created_at
        FROM customers
        WHERE email = $1
        ORDER BY id
        LIMIT 1
    `
	row := r.DB.QueryRow(query, email)

	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer and fills in its generated ID
func (r *CustomerRepository) Create(c *model.Customer) error {
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO customers (name, email, phone, address, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.DB.QueryRow(query, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt).Scan(&c.ID)
}

// UpsertBatch inserts the batch keyed on email; an existing row with the
// same email is fully replaced by the incoming values. The caller must have
// collapsed duplicate emails already: Postgres rejects a second hit on the
// same conflict key within one statement.
func (r *CustomerRepository) UpsertBatch(customers []model.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	query := `INSERT INTO customers (name, email, phone, address) VALUES `
	args := []interface{}{}
	for i, c := range customers {
		if i > 0 {
			query += ", "
		}
		n := i * 4
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, c.Name, c.Email, c.Phone, c.Address)
	}
	query += ` ON CONFLICT (email) DO UPDATE
        SET name = EXCLUDED.name, phone = EXCLUDED.phone, address = EXCLUDED.address`

	_, err := r.DB.Exec(query, args...)
	return err
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
