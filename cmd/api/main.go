package main

import (
	_ "csob_gateway/docs"
	"csob_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gateway Diagnostics API
// @version         1.0
// @description     Call diagnostics for the ČSOB acquiring-gateway integration: call-report intake, rendered panel and persisted audit trail.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
