package routes

import (
	"subterra_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients        = "/clients"
	PathServices       = "/services"
	PathSubcontractors = "/subcontractors"
	PathVehicles       = "/vehicles"
	PathEmployees      = "/employees"
	PathFinancings     = "/financings"
)

func addAdminRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	serviceHandler *handlers.ContractServiceHandler,
	subcontractorHandler *handlers.SubcontractorHandler,
	vehicleHandler *handlers.VehicleHandler,
	employeeHandler *handlers.EmployeeHandler,
	financingHandler *handlers.FinancingHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateContractService)
		services.GET("", serviceHandler.ListContractServices)
		services.GET("/:id", serviceHandler.GetContractService)
		services.PUT("/:id", serviceHandler.UpdateContractService)
		services.DELETE("/:id", serviceHandler.DeleteContractService)
	}

	subcontractors := rg.Group(PathSubcontractors)
	{
		subcontractors.POST("", subcontractorHandler.CreateSubcontractor)
		subcontractors.GET("", subcontractorHandler.ListSubcontractors)
		subcontractors.GET("/:id", subcontractorHandler.GetSubcontractor)
		subcontractors.PUT("/:id", subcontractorHandler.UpdateSubcontractor)
		subcontractors.DELETE("/:id", subcontractorHandler.DeleteSubcontractor)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.POST("", employeeHandler.CreateEmployee)
		employees.GET("", employeeHandler.ListEmployees)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.PUT("/:id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", employeeHandler.DeleteEmployee)
	}

	financings := rg.Group(PathFinancings)
	{
		financings.POST("", financingHandler.CreateFinancing)
		financings.GET("", financingHandler.ListFinancings)
		financings.GET("/:id", financingHandler.GetFinancing)
		financings.PUT("/:id", financingHandler.UpdateFinancing)
		financings.DELETE("/:id", financingHandler.DeleteFinancing)
	}
}
