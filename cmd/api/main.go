package main

import (
	"log"

	_ "konveksi_checkout/docs"
	"konveksi_checkout/internal/adapter/http/routes"
	"konveksi_checkout/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Service API
// @version         1.0
// @description     Garment storefront checkout: orders, down payments and gateway sessions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
