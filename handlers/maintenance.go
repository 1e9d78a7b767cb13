package handlers

import (
	"net/http"

	"salonix/services/maintenance"

	"github.com/gin-gonic/gin"
)

var MaintenanceService *maintenance.MaintenanceService

// ReconcileWorkerCaches rebuilds every worker's booking cache from the
// authoritative bookings collection.
func ReconcileWorkerCaches(c *gin.Context) {
	report, err := MaintenanceService.ReconcileWorkerCaches(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// MigrateLegacyServices rewrites worker and salon service lists in canonical shape.
func MigrateLegacyServices(c *gin.Context) {
	report, err := MaintenanceService.MigrateLegacyServices(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
