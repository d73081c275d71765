package service

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/carpetland/crm-backend/internal/repository"
)

// AckWorker sends the acknowledgement for a received enquiry and stamps it
// as acknowledged. It is fed enquiry IDs by a queue consumer.
type AckWorker struct {
	EnquiryRepo  repository.EnquiryRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
	SendFunc     func(msg string) bool
	Now          func() time.Time
}

func NewAckWorker(enquiries repository.EnquiryRepositoryInterface, customers repository.CustomerRepositoryInterface, sendFunc func(msg string) bool) *AckWorker {
	return &AckWorker{
		EnquiryRepo:  enquiries,
		CustomerRepo: customers,
		SendFunc:     sendFunc,
	}
}

// Process handles a single enquiry ID. A missing enquiry or customer is
// logged and dropped, not retried; a send failure is returned so the
// consumer can requeue. Already-acknowledged enquiries are skipped, which
// makes redelivery harmless.
func (w *AckWorker) Process(enquiryID int) error {
	enquiry, err := w.EnquiryRepo.GetByID(enquiryID)
	if err != nil {
		return err
	}
	if enquiry == nil {
		log.WithField("enquiry_id", enquiryID).Warn("enquiry not found, dropping job")
		return nil
	}
	if enquiry.AcknowledgedAt != nil {
		return nil
	}

	customer, err := w.CustomerRepo.GetByID(enquiry.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		log.WithField("enquiry_id", enquiryID).Warn("enquiry has no customer, dropping job")
		return nil
	}

	if !w.SendFunc(RenderEnquiryAck(customer)) {
		return fmt.Errorf("acknowledgement send failed for enquiry %d", enquiryID)
	}

	return w.EnquiryRepo.MarkAcknowledged(enquiryID, w.now())
}

func (w *AckWorker) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}
