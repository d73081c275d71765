// internal/service/template_service.go
package service

import (
	"strings"

	"github.com/carpetland/crm-backend/internal/model"
)

const enquiryAckTemplate = "Hi {name}, thanks for getting in touch with Carpetland. " +
	"We have received your enquiry and one of the team will be back to you shortly."

func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

// RenderEnquiryAck builds the acknowledgement message for a freshly
// received enquiry.
func RenderEnquiryAck(customer *model.Customer) string {
	name := customer.Name
	if name == "" {
		name = "there"
	}
	return RenderTemplate(enquiryAckTemplate, map[string]string{"name": name})
}
