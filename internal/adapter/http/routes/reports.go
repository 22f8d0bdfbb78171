package routes

import (
	"subterra_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathReports = "/reports"

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("", reportHandler.ListReportKinds)
		reports.GET("/:kind", reportHandler.GetReport)
	}
}
