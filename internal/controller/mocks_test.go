package controller_test

import (
	"time"

	"github.com/carpetland/crm-backend/internal/model"
	"github.com/carpetland/crm-backend/internal/repository"
)

// --- Mock repositories shared by the controller tests ---

type MockCustomerRepo struct {
	customers map[string]*model.Customer
	nextID    int
	created   []*model.Customer
	findErr   error
	createErr error
	upsertErr error
	upserted  [][]model.Customer
}

func newMockCustomerRepo() *MockCustomerRepo {
	return &MockCustomerRepo{customers: map[string]*model.Customer{}, nextID: 1}
}

func (m *MockCustomerRepo) GetByID(id int) (*model.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCustomerRepo) FindByEmail(email string) (*model.Customer, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.customers[email], nil
}

func (m *MockCustomerRepo) Create(c *model.Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = m.nextID
	m.nextID++
	m.customers[c.Email] = c
	m.created = append(m.created, c)
	return nil
}

func (m *MockCustomerRepo) UpsertBatch(customers []model.Customer) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, customers)
	return nil
}

type MockEnquiryRepo struct {
	nextID    int
	created   []*model.Enquiry
	createErr error
}

func newMockEnquiryRepo() *MockEnquiryRepo {
	return &MockEnquiryRepo{nextID: 1}
}

func (m *MockEnquiryRepo) Create(e *model.Enquiry) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = m.nextID
	m.nextID++
	e.CreatedAt = time.Now()
	m.created = append(m.created, e)
	return nil
}

func (m *MockEnquiryRepo) GetByID(id int) (*model.Enquiry, error) {
	for _, e := range m.created {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (m *MockEnquiryRepo) MarkAcknowledged(id int, at time.Time) error {
	return nil
}

type MockProductRepo struct {
	lowStock    []model.Product
	lowStockErr error
	upsertErr   error
	upserted    [][]model.Product
}

func (m *MockProductRepo) UpsertBatch(products []model.Product) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, products)
	return nil
}

func (m *MockProductRepo) ListLowStock(limit int) ([]model.Product, error) {
	if m.lowStockErr != nil {
		return nil, m.lowStockErr
	}
	return m.lowStock, nil
}

type MockQuoteRepo struct {
	recent     []repository.QuoteWithCustomer
	sent       []repository.QuoteWithCustomer
	recentErr  error
	sentErr    error
	markErr    error
	followedUp map[int]time.Time
}

func newMockQuoteRepo() *MockQuoteRepo {
	return &MockQuoteRepo{followedUp: map[int]time.Time{}}
}

func (m *MockQuoteRepo) ListRecent(limit int) ([]repository.QuoteWithCustomer, error) {
	if m.recentErr != nil {
		return nil, m.recentErr
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
	return m.scheduled, nil
}
