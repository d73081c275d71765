// internal/service/enquiry_service.go
package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	appErrors "github.com/carpetland/crm-backend/internal/errors"
	"github.com/carpetland/crm-backend/internal/model"
	"github.com/carpetland/crm-backend/internal/queue"
	"github.com/carpetland/crm-backend/internal/repository"
)

var validate = validator.New()

// EnquiryInput is an inbound lead payload, usually posted by the public
// website form.
type EnquiryInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

type EnquiryService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	EnquiryRepo  repository.EnquiryRepositoryInterface
	Events       queue.Publisher
}

// Intake validates the lead, resolves it to a customer by email
// (find-or-create), and records exactly one enquiry against that customer.
// The enquiry is only written once the customer step has completed, so a
// stored enquiry always has a valid customer reference.
func (s *EnquiryService) Intake(input EnquiryInput) (*model.Enquiry, error) {
	if err := validate.Struct(input); err != nil {
		fields := err.(validator.ValidationErrors)
		return nil, appErrors.NewValidation(strings.ToLower(fields[0].Field()))
	}

	customer, err := s.CustomerRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}

	var customerID int
	if customer != nil {
		customerID = customer.ID
	} else {
		c := &model.Customer{
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if err := s.CustomerRepo.Create(c); err != nil {
			return nil, err
		}
		customerID = c.ID
	}

	source := input.Source
	if source == "" {
		source = "website"
	}

	enquiry := &model.Enquiry{
		CustomerID: customerID,
		Source:     source,
		Status:     "new",
		Notes:      input.Message,
	}
	if err := s.EnquiryRepo.Create(enquiry); err != nil {
		return nil, err
	}

	// Acknowledgement is best effort: the enquiry is already persisted, a
	// dead queue must not fail the intake.
	if s.Events != nil {
		if err := s.Events.Publish(queue.TopicEnquiryIntake, queue.EnquiryEvent{EnquiryID: enquiry.ID}); err != nil {
			log.WithError(err).WithField("enquiry_id", enquiry.ID).Warn("failed to publish enquiry event")
		}
	}

	return enquiry, nil
}
