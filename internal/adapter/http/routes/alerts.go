package routes

import (
	"subterra_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAlerts   = "/alerts"
	PathProjects = "/projects"
)

// Alert listings are recomputed per request; the POST actions below only
// write markers, never alert rows.
func addAlertRoutes(
	rg *gin.RouterGroup,
	alertHandler *handlers.AlertHandler,
	vehicleAlertHandler *handlers.VehicleAlertHandler,
	trackingHandler *handlers.ProjectTrackingHandler,
) {
	alerts := rg.Group(PathAlerts)
	{
		alerts.GET("/clients", alertHandler.ListClientAlerts)
		alerts.GET("/subcontractors", alertHandler.ListSubcontractorAlerts)
		alerts.GET("/services", alertHandler.ListContractedServiceAlerts)
		alerts.GET("/vehicles", vehicleAlertHandler.ListVehicleAlerts)

		alerts.POST("/:id/paid", alertHandler.MarkAsPaid)
		alerts.POST("/:id/cancelled", alertHandler.MarkAsCancelled)
		alerts.POST("/:id/reminder", alertHandler.SendReminder)

		alerts.POST("/vehicles/:id/:item/complete", vehicleAlertHandler.CompleteComplianceItem)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("/tracking", trackingHandler.ListProjectTracking)
	}
}
