package repository

import (
	"database/sql"
	"time"

	"github.com/carpetland/crm-backend/internal/model"
)

// EnquiryRepositoryInterface defines methods used by services
type EnquiryRepositoryInterface interface {
	Create(e *model.Enquiry) error
	GetByID(id int) (*model.Enquiry, error)
	MarkAcknowledged(id int, at time.Time) error
}

type EnquiryRepository struct {
	DB *sql.DB
}

// Create inserts a new enquiry and fills in its generated ID
func (r *EnquiryRepository) Create(e *model.Enquiry) error {
	e.CreatedAt = time.Now()
	if e.Status == "" {
		e.Status = "new"
	}
	query := `
        INSERT INTO enquiries (customer_id, source, status, notes, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.DB.QueryRow(query, e.CustomerID, e.Source, e.Status, e.Notes, e.CreatedAt).Scan(&e.ID)
}

// GetByID fetches an enquiry by ID
func (r *EnquiryRepository) GetByID(id int) (*model.Enquiry, error) {
	query := `
        SELECT id, customer_id, source, status, notes, acknowledged_at, created_at
        FROM enquiries
        WHERE id = $1
    `
	var e model.Enquiry
	err := r.DB.QueryRow(query, id).Scan(&e.ID, &e.CustomerID, &e.Source, &e.Status, &e.Notes, &e.AcknowledgedAt, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// MarkAcknowledged stamps the time the intake acknowledgement went out.
func (r *EnquiryRepository) MarkAcknowledged(id int, at time.Time) error {
	query := `UPDATE enquiries SET acknowledged_at=$1 WHERE id=$2`
	_, err := r.DB.Exec(query, at, id)
	return err
}

var _ EnquiryRepositoryInterface = (*EnquiryRepository)(nil)
