package repository

import (
	"database/sql"
	"time"
)

// JobWithNames is a job row joined through its quote to the customer and to
// the assigned profile. Names are empty when a join found nothing.
type JobWithNames struct {
	ID            int
	CustomerName  string
	AssigneeName  string
	Status        string
	ScheduledDate time.Time
}

// JobRepositoryInterface defines methods used by services
type JobRepositoryInterface interface {
	ListScheduled(limit int) ([]JobWithNames, error)
}

type JobRepository struct {
	DB *sql.DB
}

// ListScheduled returns jobs in "scheduled" status by ascending date.
// Joins are LEFT so a dangling quote or unassigned job still comes back.
func (r *JobRepository) ListScheduled(limit int) ([]JobWithNames, error) {
	query := `
        SELECT j.id, COALESCE(c.name, ''), COALESCE(p.name, ''), j.status, j.scheduled_date
        FROM jobs j
        LEFT JOIN quotes q ON q.id = j.quote_id
        LEFT JOIN customers c ON c.id = q.customer_id
        LEFT JOIN profiles p ON p.id = j.assigned_to
        WHERE j.status = 'scheduled'
        ORDER BY j.scheduled_date ASC
        LIMIT $1
    `
	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []JobWithNames{}
	for rows.Next() {
		var j JobWithNames
		if err := rows.Scan(&j.ID, &j.CustomerName, &j.AssigneeName, &j.Status, &j.ScheduledDate); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

var _ JobRepositoryInterface = (*JobRepository)(nil)
