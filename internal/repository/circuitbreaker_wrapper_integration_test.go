//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/couponsentinel/optimizer-service/internal/circuitbreaker"
	"github.com/couponsentinel/optimizer-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepositoryWithCircuitBreaker_Seed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(repo, cb)

	products := []model.Product{
		{StoreName: "Target", ItemName: "Whole Milk", Category: "dairy", Price: 3.99, PackageSize: 1, PackageUnit: "gallon"},
		{StoreName: "Walmart", ItemName: "Whole Milk", Category: "dairy", Price: 3.48, PackageSize: 1, PackageUnit: "gallon"},
	}

	err := wrappedRepo.Seed(ctx, products)
	require.NoError(t, err)

	count, err := wrappedRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestProductsRepositoryWithCircuitBreaker_ListByStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(repo, cb)

	products := []model.Product{
		{StoreName: "Target", ItemName: "Eggs", Category: "dairy", Price: 2.79, PackageSize: 12, PackageUnit: "count"},
		{StoreName: "Costco", ItemName: "Eggs", Category: "dairy", Price: 5.99, PackageSize: 24, PackageUnit: "count"},
	}
	require.NoError(t, wrappedRepo.Seed(ctx, products))

	targetProducts, err := wrappedRepo.ListByStore(ctx, "Target")
	require.NoError(t, err)
	require.Len(t, targetProducts, 1)
	assert.Equal(t, "Eggs", targetProducts[0].ItemName)
}

func TestProductsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(repo, cb)

	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}

func TestCouponsRepositoryWithCircuitBreaker_Seed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCouponsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewCouponsRepositoryWithCircuitBreaker(repo, cb)

	coupons := []model.Coupon{
		{ID: "mfr-milk-1", CouponType: model.CouponManufacturer, DiscountType: model.DiscountAmountOff, StoreScope: "any", ItemFilter: "milk", Value: 0.75, Description: "$0.75 off milk"},
		{ID: "store-eggs-1", CouponType: model.CouponStore, DiscountType: model.DiscountPercentOff, StoreScope: "Target", ItemFilter: "eggs", Value: 0.10, Description: "10% off eggs"},
	}

	err := wrappedRepo.Seed(ctx, coupons)
	require.NoError(t, err)

	count, err := wrappedRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	listed, err := wrappedRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestLogsRepositoryWithCircuitBreaker_CreateMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	entries := []*LogEntryDocument{
		{
			Level:     "info",
			Message:   "Entry 1",
			RequestID: "req-1",
			Timestamp: time.Now(),
		},
		{
			Level:     "error",
			Message:   "Entry 2",
			RequestID: "req-2",
			Timestamp: time.Now(),
		},
	}

	err := wrappedRepo.CreateMany(ctx, entries)
	assert.NoError(t, err)
}

func TestLogsRepositoryWithCircuitBreaker_Query(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	entry := &LogEntryDocument{
		Level:     "info",
		Message:   "Test query",
		RequestID: "query-test-id",
		Timestamp: time.Now(),
	}
	_ = wrappedRepo.Create(ctx, entry)

	// Query via circuit breaker wrapper
	opts := LogQueryOptions{
		RequestID: "query-test-id",
	}
	entries, err := wrappedRepo.Query(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 1)
}

func TestLogsRepositoryWithCircuitBreaker_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "info",
		Message:   "Count test 1",
		Timestamp: time.Now(),
	})
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "error",
		Message:   "Count test 2",
		Timestamp: time.Now(),
	})

	// Count via circuit breaker wrapper
	count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(2))

	// Count with filter
	opts := LogQueryOptions{
		Level: "info",
	}
	countFiltered, err := wrappedRepo.Count(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countFiltered, int64(1))
}

func TestLogsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}
