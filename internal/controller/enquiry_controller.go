// internal/controller/enquiry_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	appErrors "github.com/carpetland/crm-backend/internal/errors"
	"github.com/carpetland/crm-backend/internal/service"
)

type EnquiryController struct {
	EnquiryService *service.EnquiryService
}

// CreateEnquiry accepts an inbound lead from the public website form.
func (c *EnquiryController) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var input service.EnquiryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	enquiry, err := c.EnquiryService.Intake(input)
	if err != nil {
		if appErrors.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "name and email are required")
			return
		}
		log.WithError(err).Error("failed to process enquiry")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"enquiry": enquiry,
	})
}
