package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/carpetland/crm-backend/internal/model"
	"github.com/carpetland/crm-backend/internal/repository"
	"github.com/carpetland/crm-backend/internal/service"
)

type MockQuoteRepo struct {
	recent     []repository.QuoteWithCustomer
	sent       []repository.QuoteWithCustomer
	recentErr  error
	sentErr    error
	followedUp map[int]time.Time
	markErr    error
}

func newMockQuoteRepo() *MockQuoteRepo {
	return &MockQuoteRepo{followedUp: map[int]time.Time{}}
}

func (m *MockQuoteRepo) ListRecent(limit int) ([]repository.QuoteWithCustomer, error) {
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	if len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func (m *MockQuoteRepo) ListSent() ([]repository.QuoteWithCustomer, error) {
	if m.sentErr != nil {
		return nil, m.sentErr
	}
	return m.sent, nil
}

func (m *MockQuoteRepo) MarkFollowedUp(id int, date time.Time) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.followedUp[id] = date
	return nil
}

type MockJobRepo struct {
	scheduled []repository.JobWithNames
	err       error
}

func (m *MockJobRepo) ListScheduled(limit int) ([]repository.JobWithNames, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.scheduled) > limit {
		return m.scheduled[:limit], nil
	}
	return m.scheduled, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecentQuotesSubstitutesUnknownCustomer(t *testing.T) {
	quoteRepo := newMockQuoteRepo()
	quoteRepo.recent = []repository.QuoteWithCustomer{
		{ID: 1, CustomerName: "Jane Doe", TotalAmount: 100, Status: "sent", CreatedAt: time.Now()},
		{ID: 2, CustomerName: "", TotalAmount: 50, Status: "draft", CreatedAt: time.Now()},
	}
	svc := &service.DashboardService{QuoteRepo: quoteRepo}

	quotes, err := svc.RecentQuotes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotes[0].CustomerName != "Jane Doe" {
		t.Errorf("expected Jane Doe, got %q", quotes[0].CustomerName)
	}
	if quotes[1].CustomerName != "Unknown" {
		t.Errorf("expected Unknown placeholder, got %q", quotes[1].CustomerName)
	}
}

func TestUpcomingJobsSubstitutesPlaceholders(t *testing.T) {
	jobRepo := &MockJobRepo{scheduled: []repository.JobWithNames{
		{ID: 1, CustomerName: "", AssigneeName: "", Status: "scheduled", ScheduledDate: time.Now()},
	}}
	svc := &service.DashboardService{JobRepo: jobRepo}

	jobs, err := svc.UpcomingJobs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs[0].CustomerName != "Unknown" {
		t.Errorf("expected Unknown, got %q", jobs[0].CustomerName)
	}
	if jobs[0].ContractorName != "Unassigned" {
		t.Errorf("expected Unassigned, got %q", jobs[0].ContractorName)
	}
}

func TestLowStockQueriesWithPanelLimit(t *testing.T) {
	productRepo := &MockProductRepo{lowStock: []model.Product{
		{ID: 1, Name: "Oak Laminate", CurrentStock: 2, MinimumStock: 4},
		{ID: 2, Name: "Vinyl Plank Grey", CurrentStock: 0, MinimumStock: 3},
	}}
	svc := &service.DashboardService{ProductRepo: productRepo}

	items, err := svc.LowStock()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if productRepo.lastLimitArg != 5 {
		t.Errorf("expected the panel limit of 5, got %d", productRepo.lastLimitArg)
	}
	if len(items) != 2 || items[0].Name != "Oak Laminate" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestFollowUpsExcludeRecentQuotes(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	quoteRepo := newMockQuoteRepo()
	quoteRepo.sent = []repository.QuoteWithCustomer{
		{ID: 1, CustomerName: "Jane", Status: "sent", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 2, CustomerName: "Tom", Status: "sent", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 3, CustomerName: "Ana", Status: "sent", CreatedAt: now.Add(-72 * time.Hour)},
		{ID: 4, CustomerName: "Ben", Status: "sent", CreatedAt: now.Add(-240 * time.Hour)},
	}
	svc := &service.DashboardService{QuoteRepo: quoteRepo, Now: fixedClock(now)}

	followUps, err := svc.FollowUps()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(followUps) != 2 {
		t.Fatalf("expected 2 follow-ups, got %d: %+v", len(followUps), followUps)
	}
	if followUps[0].ID != 3 || followUps[1].ID != 4 {
		t.Errorf("expected quotes 3 and 4, got %+v", followUps)
	}
	if followUps[0].DaysAgo != 3 {
		t.Errorf("expected 3 days ago, got %d", followUps[0].DaysAgo)
	}
	if followUps[1].DaysAgo != 10 {
		t.Errorf("expected 10 days ago, got %d", followUps[1].DaysAgo)
	}
}

func TestFollowUpsCappedAtFive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	quoteRepo := newMockQuoteRepo()
	for i := 1; i <= 8; i++ {
		quoteRepo.sent = append(quoteRepo.sent, repository.QuoteWithCustomer{
			ID:        i,
			Status:    "sent",
			CreatedAt: now.Add(-time.Duration(72+i) * time.Hour),
		})
	}
	svc := &service.DashboardService{QuoteRepo: quoteRepo, Now: fixedClock(now)}

	followUps, err := svc.FollowUps()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(followUps) != 5 {
		t.Errorf("expected the list capped at 5, got %d", len(followUps))
	}
}

func TestMarkFollowedUpStampsCurrentDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	quoteRepo := newMockQuoteRepo()
	svc := &service.DashboardService{QuoteRepo: quoteRepo, Now: fixedClock(now)}

	if err := svc.MarkFollowedUp(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stamped, ok := quoteRepo.followedUp[7]
	if !ok {
		t.Fatal("expected quote 7 to be stamped")
	}
	if !stamped.Equal(now) {
		t.Errorf("expected stamp %v, got %v", now, stamped)
	}
}

func TestDashboardReadsPropagateRepositoryErrors(t *testing.T) {
	quoteRepo := newMockQuoteRepo()
	quoteRepo.recentErr = errors.New("db down")
	quoteRepo.sentErr = errors.New("db down")
	svc := &service.DashboardService{
		QuoteRepo:   quoteRepo,
		JobRepo:     &MockJobRepo{err: errors.New("db down")},
		ProductRepo: &MockProductRepo{lowStockErr: errors.New("db down")},
	}

	if _, err := svc.RecentQuotes(); err == nil {
		t.Error("RecentQuotes should surface the repository error")
	}
	if _, err := svc.UpcomingJobs(); err == nil {
		t.Error("UpcomingJobs should surface the repository error")
	}
	if _, err := svc.LowStock(); err == nil {
		t.Error("LowStock should surface the repository error")
	}
	if _, err := svc.FollowUps(); err == nil {
		t.Error("FollowUps should surface the repository error")
	}
}
