package main

import (
	_ "subterra_admin/docs"
	"subterra_admin/internal/adapter/http/routes"
	"subterra_admin/internal/config"
	"subterra_admin/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Subterra Admin API
// @version         1.0
// @description     Business administration for underground services contracting: clients, contracted services, subcontractors, fleet compliance, payment alerts and reports. Backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.App.LogLevel)

	routes.Run()
}
