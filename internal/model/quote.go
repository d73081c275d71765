// internal/model/quote.go
package model

import "time"

type Quote struct {
	ID           int        `db:"id" json:"id"`
	CustomerID   int        `db:"customer_id" json:"customer_id"`
	TotalAmount  float64    `db:"total_amount" json:"total_amount"`
	Status       string     `db:"status" json:"status"` // draft, sent, approved, declined
	FollowUpDate *time.Time `db:"follow_up_date" json:"follow_up_date,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
