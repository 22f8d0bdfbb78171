package routes

import (
	_ "subterra_admin/docs" // swag generated documentation
	"subterra_admin/internal/adapter/http/handlers"
	"subterra_admin/internal/adapter/persistence/repository"
	appconfig "subterra_admin/internal/config"
	"subterra_admin/internal/infrastructure/database"
	"subterra_admin/internal/usecase"
	"subterra_admin/internal/usecase/interfaces"
	"subterra_admin/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the full dependency graph and starts the server.
func Run() {
	cfg := appconfig.Load()
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(router *gin.Engine, cfg *appconfig.Config) {
	ddb := database.ConnectDynamoDB(cfg.AWS)

	clientRepo := repository.NewClientDynamoRepository(ddb)
	serviceRepo := repository.NewContractServiceDynamoRepository(ddb)
	subcontractorRepo := repository.NewSubcontractorDynamoRepository(ddb)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	employeeRepo := repository.NewEmployeeDynamoRepository(ddb)
	financingRepo := repository.NewFinancingDynamoRepository(ddb)
	markerRepo := repository.NewPaymentMarkerDynamoRepository(ddb)

	clock := interfaces.SystemClock{}

	clientUC := usecase.NewClientUseCase(clientRepo)
	serviceUC := usecase.NewContractServiceUseCase(serviceRepo, clientRepo)
	subcontractorUC := usecase.NewSubcontractorUseCase(subcontractorRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	financingUC := usecase.NewFinancingUseCase(financingRepo)

	paymentAlertUC := usecase.NewPaymentAlertUseCase(clientRepo, serviceRepo, subcontractorRepo, markerRepo, clock)
	vehicleAlertUC := usecase.NewVehicleAlertUseCase(vehicleRepo, clock)
	trackingUC := usecase.NewProjectTrackingUseCase(clientRepo, serviceRepo, clock)
	reportUC := usecase.NewReportUseCase(paymentAlertUC, vehicleAlertUC, trackingUC, clientRepo, serviceRepo, employeeRepo, financingRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAdminRoutes(v1,
		handlers.NewClientHandler(clientUC),
		handlers.NewContractServiceHandler(serviceUC),
		handlers.NewSubcontractorHandler(subcontractorUC),
		handlers.NewVehicleHandler(vehicleUC),
		handlers.NewEmployeeHandler(employeeUC),
		handlers.NewFinancingHandler(financingUC),
	)
	addAlertRoutes(v1,
		handlers.NewAlertHandler(paymentAlertUC),
		handlers.NewVehicleAlertHandler(vehicleAlertUC),
		handlers.NewProjectTrackingHandler(trackingUC),
	)
	addReportRoutes(v1, handlers.NewReportHandler(reportUC))
}

func setMiddlewares(router *gin.Engine, cfg *appconfig.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))
}
