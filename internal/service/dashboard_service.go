// internal/service/dashboard_service.go
package service

import (
	"math"
	"time"

	"github.com/carpetland/crm-backend/internal/repository"
)

// Every dashboard panel shows at most five rows.
const dashboardLimit = 5

// Quotes in "sent" status become follow-up candidates once this old.
const followUpAfterDays = 3

const dateLayout = "2006-01-02"

type DashboardService struct {
	QuoteRepo   repository.QuoteRepositoryInterface
	JobRepo     repository.JobRepositoryInterface
	ProductRepo repository.ProductRepositoryInterface

	// Now is swappable so the follow-up cutoff can be tested against a
	// fixed clock. Nil means wall clock.
	Now func() time.Time
}

type RecentQuote struct {
	ID           int     `json:"id"`
	CustomerName string  `json:"customer_name"`
	CreatedAt    string  `json:"created_at"`
	TotalAmount  float64 `json:"total_amount"`
	Status       string  `json:"status"`
}

type UpcomingJob struct {
	ID             int    `json:"id"`
	CustomerName   string `json:"customer_name"`
	ScheduledDate  string `json:"scheduled_date"`
	ContractorName string `json:"contractor_name"`
	Status         string `json:"status"`
}

type LowStockItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	MinimumStock int    `json:"minimum_stock"`
}

type FollowUp struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	CreatedAt    string `json:"created_at"`
	DaysAgo      int    `json:"days_ago"`
}

func (s *DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RecentQuotes returns the latest quotes with their customer names.
func (s *DashboardService) RecentQuotes() ([]RecentQuote, error) {
	rows, err := s.QuoteRepo.ListRecent(dashboardLimit)
	if err != nil {
		return nil, err
	}

	quotes := []RecentQuote{}
	for _, q := range rows {
		quotes = append(quotes, RecentQuote{
			ID:           q.ID,
			CustomerName: orPlaceholder(q.CustomerName, "Unknown"),
			CreatedAt:    q.CreatedAt.Format(dateLayout),
			TotalAmount:  q.TotalAmount,
			Status:       q.Status,
		})
	}
	return quotes, nil
}

// UpcomingJobs returns scheduled jobs by ascending date. A job whose quote
// or assignee is missing still renders, with a placeholder name.
func (s *DashboardService) UpcomingJobs() ([]UpcomingJob, error) {
	rows, err := s.JobRepo.ListScheduled(dashboardLimit)
	if err != nil {
		return nil, err
	}

	jobs := []UpcomingJob{}
	for _, j := range rows {
		jobs = append(jobs, UpcomingJob{
			ID:             j.ID,
			CustomerName:   orPlaceholder(j.CustomerName, "Unknown"),
			ScheduledDate:  j.ScheduledDate.Format(dateLayout),
			ContractorName: orPlaceholder(j.AssigneeName, "Unassigned"),
			Status:         j.Status,
		})
	}
	return jobs, nil
}

// LowStock returns products strictly below their minimum stock threshold.
func (s *DashboardService) LowStock() ([]LowStockItem, error) {
	products, err := s.ProductRepo.ListLowStock(dashboardLimit)
	if err != nil {
		return nil, err
	}

	items := []LowStockItem{}
	for _, p := range products {
		items = append(items, LowStockItem{
			ID:           p.ID,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			MinimumStock: p.MinimumStock,
		})
	}
	return items, nil
}

// FollowUps returns sent quotes old enough to chase. Age is computed here,
// at render time, rather than in the store.
func (s *DashboardService) FollowUps() ([]FollowUp, error) {
	rows, err := s.QuoteRepo.ListSent()
	if err != nil {
		return nil, err
	}

	now := s.now()
	followUps := []FollowUp{}
	for _, q := range rows {
		days := daysAgo(now, q.CreatedAt)
		if days < followUpAfterDays {
			continue
		}
		followUps = append(followUps, FollowUp{
			ID:           q.ID,
			CustomerName: orPlaceholder(q.CustomerName, "Unknown"),
			CreatedAt:    q.CreatedAt.Format(dateLayout),
			DaysAgo:      days,
		})
		if len(followUps) == dashboardLimit {
			break
		}
	}
	return followUps, nil
}

// MarkFollowedUp stamps today's date on the quote so it drops off the
// reminder list.
func (s *DashboardService) MarkFollowedUp(quoteID int) error {
	return s.QuoteRepo.MarkFollowedUp(quoteID, s.now())
}

func daysAgo(now, then time.Time) int {
	diff := now.Sub(then)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func orPlaceholder(name, placeholder string) string {
	if name == "" {
		return placeholder
	}
	return name
}
