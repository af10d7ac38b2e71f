// Package main is the entry point for the optimizer-service application.
//
// @title           Coupon Sentinel Optimizer API
// @version         1.0.0
// @description     API for optimizing shopping lists across store catalogs with coupon stacking.
//
//	The service matches shopping list items against store catalogs, applies
//	stackable manufacturer, store, and BOGO coupons, and builds per-store
//	purchase plans that minimize total out-of-pocket cost.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/couponsentinel/optimizer-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Optimization
// @tag.description Shopping list optimization operations
//
// @tag.name        Catalog
// @tag.description Store catalog and coupon browsing endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/couponsentinel/optimizer-service/docs" // swagger docs

	"github.com/couponsentinel/optimizer-service/config"
	"github.com/couponsentinel/optimizer-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
