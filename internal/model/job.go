// internal/model/job.go
package model

import "time"

type Job struct {
	ID            int       `db:"id" json:"id"`
	QuoteID       int       `db:"quote_id" json:"quote_id"`
	AssignedTo    *int      `db:"assigned_to" json:"assigned_to,omitempty"`
	Status        string    `db:"status" json:"status"` // scheduled, in_progress, completed
	ScheduledDate time.Time `db:"scheduled_date" json:"scheduled_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
