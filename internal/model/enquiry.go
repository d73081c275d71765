// internal/model/enquiry.go
package model

import "time"

type Enquiry struct {
	ID             int        `db:"id" json:"id"`
	CustomerID     int        `db:"customer_id" json:"customer_id"`
	Source         string     `db:"source" json:"source"`
	Status         string     `db:"status" json:"status"` // new, contacted, quoted, closed
	Notes          string     `db:"notes" json:"notes"`
	AcknowledgedAt *time.Time `db:"acknowledged_at" json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
