package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/carpetland/crm-backend/internal/errors"
)

// QuoteWithCustomer is a quote row joined to its customer's name. The name
// is empty when the join found nothing; placeholder substitution is the
// caller's concern.
type QuoteWithCustomer struct {
	ID           int
	CustomerName string
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
}

// QuoteRepositoryInterface defines methods used by services
type QuoteRepositoryInterface interface {
	ListRecent(limit int) ([]QuoteWithCustomer, error)
	ListSent() ([]QuoteWithCustomer, error)
	MarkFollowedUp(id int, date time.Time) error
}

type QuoteRepository struct {
	DB *sql.DB
}

// ListRecent returns the latest quotes by creation time with customer names.
func (r *QuoteRepository) ListRecent(limit int) ([]QuoteWithCustomer, error) {
	query := `
        SELECT q.id, COALESCE(c.name, ''), q.total_amount, q.status, q.created_at
        FROM quotes q
        LEFT JOIN customers c ON c.id = q.customer_id
        ORDER BY q.created_at DESC
        LIMIT $1
    `
	return r.queryQuotes(query, limit)
}

// ListSent returns every quote in "sent" status, newest first. The age
// cutoff for follow-ups is applied by the service against its own clock.
func (r *QuoteRepository) ListSent() ([]QuoteWithCustomer, error) {
	query := `
        SELECT q.id, COALESCE(c.name, ''), q.total_amount, q.status, q.created_at
        FROM quotes q
        LEFT JOIN customers c ON c.id = q.customer_id
        WHERE q.status = 'sent'
        ORDER BY q.created_at DESC
    `
	return r.queryQuotes(query)
}

func (r *QuoteRepository) queryQuotes(query string, args ...interface{}) ([]QuoteWithCustomer, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := []QuoteWithCustomer{}
	for rows.Next() {
		var q QuoteWithCustomer
		if err := rows.Scan(&q.ID, &q.CustomerName, &q.TotalAmount, &q.Status, &q.CreatedAt); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// MarkFollowedUp stamps the follow-up date on a quote.
func (r *QuoteRepository) MarkFollowedUp(id int, date time.Time) error {
	res, err := r.DB.Exec(`UPDATE quotes SET follow_up_date=$1 WHERE id=$2`, date, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewQuoteNotFound(id)
	}
	return nil
}

var _ QuoteRepositoryInterface = (*QuoteRepository)(nil)
