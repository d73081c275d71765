package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carpetland/crm-backend/internal/controller"
	"github.com/carpetland/crm-backend/internal/service"
)

func newEnquiryController(customers *MockCustomerRepo, enquiries *MockEnquiryRepo) *controller.EnquiryController {
	return &controller.EnquiryController{
		EnquiryService: &service.EnquiryService{
			CustomerRepo: customers,
			EnquiryRepo:  enquiries,
		},
	}
}

func TestCreateEnquiry(t *testing.T) {
	customers := newMockCustomerRepo()
	enquiries := newMockEnquiryRepo()
	ctrl := newEnquiryController(customers, enquiries)

	body := `{"name":"Jane Smith","email":"jane@example.com","message":"Need a quote for 40sqm"}`
	req := httptest.NewRequest(http.MethodPost, "/enquiries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.CreateEnquiry(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Enquiry struct {
			ID         int    `json:"id"`
			CustomerID int    `json:"customer_id"`
			Status     string `json:"status"`
		} `json:"enquiry"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Enquiry.Status != "new" {
		t.Errorf("Expected status 'new', got %q", resp.Enquiry.Status)
	}
	if len(customers.created) != 1 {
		t.Errorf("Expected 1 customer created, got %d", len(customers.created))
	}
	if len(enquiries.created) != 1 {
		t.Errorf("Expected 1 enquiry created, got %d", len(enquiries.created))
	}
}

func TestCreateEnquiry_MissingEmail(t *testing.T) {
	customers := newMockCustomerRepo()
	enquiries := newMockEnquiryRepo()
	ctrl := newEnquiryController(customers, enquiries)

	req := httptest.NewRequest(http.MethodPost, "/enquiries", strings.NewReader(`{"name":"Jane Smith"}`))
	rec := httptest.NewRecorder()

	ctrl.CreateEnquiry(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name and email are required") {
		t.Errorf("Expected validation message, got %q", rec.Body.String())
	}
	if len(enquiries.created) != 0 {
		t.Errorf("Expected no enquiries created, got %d", len(enquiries.created))
	}
}

func TestCreateEnquiry_InvalidJSON(t *testing.T) {
	ctrl := newEnquiryController(newMockCustomerRepo(), newMockEnquiryRepo())

	req := httptest.NewRequest(http.MethodPost, "/enquiries", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	ctrl.CreateEnquiry(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid request body") {
		t.Errorf("Expected body error message, got %q", rec.Body.String())
	}
}

func TestCreateEnquiry_BackendFailure(t *testing.T) {
	customers := newMockCustomerRepo()
	customers.findErr = errors.New("connection refused")
	ctrl := newEnquiryController(customers, newMockEnquiryRepo())

	body := `{"name":"Jane Smith","email":"jane@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/enquiries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.CreateEnquiry(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("Expected an error field in the response")
	}
}
