// internal/controller/dashboard_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	appErrors "github.com/carpetland/crm-backend/internal/errors"
	"github.com/carpetland/crm-backend/internal/service"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

// The dashboard panels degrade to an empty list when their query fails;
// the failure is logged here so it stays observable.

func (c *DashboardController) RecentQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := c.DashboardService.RecentQuotes()
	if err != nil {
		log.WithError(err).Error("dashboard: failed to fetch recent quotes")
		writeJSON(w, http.StatusOK, []service.RecentQuote{})
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (c *DashboardController) UpcomingJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := c.DashboardService.UpcomingJobs()
	if err != nil {
		log.WithError(err).Error("dashboard: failed to fetch upcoming jobs")
		writeJSON(w, http.StatusOK, []service.UpcomingJob{})
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (c *DashboardController) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := c.DashboardService.LowStock()
	if err != nil {
		log.WithError(err).Error("dashboard: failed to fetch low stock items")
		writeJSON(w, http.StatusOK, []service.LowStockItem{})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *DashboardController) FollowUps(w http.ResponseWriter, r *http.Request) {
	followUps, err := c.DashboardService.FollowUps()
	if err != nil {
		log.WithError(err).Error("dashboard: failed to fetch follow-ups")
		writeJSON(w, http.StatusOK, []service.FollowUp{})
		return
	}
	writeJSON(w, http.StatusOK, followUps)
}

// MarkFollowedUp stamps a follow-up date on a quote. Unlike the read
// panels this is a write, so failures surface.
func (c *DashboardController) MarkFollowedUp(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote id")
		return
	}

	if err := c.DashboardService.MarkFollowedUp(id); err != nil {
		if _, ok := err.(*appErrors.ErrQuoteNotFound); ok {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.WithError(err).Error("failed to mark quote followed up")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
