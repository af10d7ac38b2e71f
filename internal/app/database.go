// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/couponsentinel/optimizer-service/config"
	"github.com/couponsentinel/optimizer-service/internal/circuitbreaker"
	"github.com/couponsentinel/optimizer-service/internal/repository"
	"github.com/couponsentinel/optimizer-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	ProductsRepo           repository.ProductsRepositoryInterface
	CouponsRepo            repository.CouponsRepositoryInterface
	LoggingService         service.LoggingService
	ProductsCircuitBreaker *circuitbreaker.CircuitBreaker
	CouponsCircuitBreaker  *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	productsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-products",
	})

	couponsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-coupons",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	productsRepo := repository.NewProductsRepository(db)
	productsRepoWithCB := repository.NewProductsRepositoryWithCircuitBreaker(productsRepo, productsCB)

	couponsRepo := repository.NewCouponsRepository(db)
	couponsRepoWithCB := repository.NewCouponsRepositoryWithCircuitBreaker(couponsRepo, couponsCB)

	// Seed the built-in catalog and coupon book when the collections are empty
	if err := seedCatalog(productsRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed product catalog")
	}
	if err := seedCoupons(couponsRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed coupon book")
	}

	return &DatabaseComponents{
		ProductsRepo:           productsRepoWithCB,
		CouponsRepo:            couponsRepoWithCB,
		LoggingService:         loggingService,
		ProductsCircuitBreaker: productsCB,
		CouponsCircuitBreaker:  couponsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// seedCatalog inserts the built-in product catalog when the collection is empty.
func seedCatalog(repo repository.ProductsRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		if err := repo.Seed(ctx, service.DefaultProducts); err != nil {
			return err
		}
		log.Info().Int("products", len(service.DefaultProducts)).Msg("Seeded product catalog")
	}

	return nil
}

// seedCoupons inserts the built-in coupon book when the collection is empty.
func seedCoupons(repo repository.CouponsRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		if err := repo.Seed(ctx, service.DefaultCoupons); err != nil {
			return err
		}
		log.Info().Int("coupons", len(service.DefaultCoupons)).Msg("Seeded coupon book")
	}

	return nil
}
