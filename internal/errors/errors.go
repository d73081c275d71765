// internal/errors/errors.go
package appErrors

import "fmt"

// ValidationError marks a request rejected before any backend call.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func NewValidation(field string) error {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// ErrQuoteNotFound is a sentinel error
type ErrQuoteNotFound struct {
	QuoteID int
}

func (e *ErrQuoteNotFound) Error() string {
	return fmt.Sprintf("quote with ID %d not found", e.QuoteID)
}

// Helper constructor
func NewQuoteNotFound(id int) error {
	return &ErrQuoteNotFound{QuoteID: id}
}

// ErrEnquiryNotFound is a sentinel error
type ErrEnquiryNotFound struct {
	EnquiryID int
}

func (e *ErrEnquiryNotFound) Error() string {
	return fmt.Sprintf("enquiry with ID %d not found", e.EnquiryID)
}

func NewEnquiryNotFound(id int) error {
	return &ErrEnquiryNotFound{EnquiryID: id}
}
