// internal/controller/import_controller.go
package controller

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/carpetland/crm-backend/internal/service"
)

type ImportController struct {
	ImportService *service.ImportService
}

// ImportFile accepts a multipart CSV upload and reconciles its customer
// and product rows against the store.
func (c *ImportController) ImportFile(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "a CSV file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := c.ImportService.Import(string(content))
	if err != nil {
		log.WithError(err).Error("import failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
