// Package app provides router configuration.
package app

import (
	"github.com/couponsentinel/optimizer-service/config"
	"github.com/couponsentinel/optimizer-service/internal/http"
	"github.com/couponsentinel/optimizer-service/internal/repository"
	"github.com/couponsentinel/optimizer-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	optimizer service.Optimizer,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var productsRepo repository.ProductsRepositoryInterface
	var couponsRepo repository.CouponsRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		productsRepo = dbComponents.ProductsRepo
		couponsRepo = dbComponents.CouponsRepo
		loggingService = dbComponents.LoggingService
	}

	// Provider services degrade to the built-in data when no repository is wired
	catalogService := service.NewCatalogService(productsRepo)
	couponService := service.NewCouponService(couponsRepo)

	handler := http.NewHandler(optimizer, catalogService, couponService,
		http.WithSnapshotCacheTTL(cfg.Cache.TTL))
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.ProductsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_products", dbComponents.ProductsCircuitBreaker)
		}
		if dbComponents.CouponsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_coupons", dbComponents.CouponsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		CatalogService:    catalogService,
		CouponService:     couponService,
		Optimizer:         optimizer,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
