package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/couponsentinel/optimizer-service/internal/domain/dto"
	"github.com/couponsentinel/optimizer-service/internal/domain/model"
	"github.com/couponsentinel/optimizer-service/internal/metrics"
	"github.com/couponsentinel/optimizer-service/internal/middleware"
	"github.com/couponsentinel/optimizer-service/internal/service"
)

// snapshotCache provides thread-safe TTL caching of a catalog or coupon snapshot.
type snapshotCache[T any] struct {
	value     atomic.Value // holds []T
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newSnapshotCache creates a new snapshot cache with the given TTL.
func newSnapshotCache[T any](ttl time.Duration) *snapshotCache[T] {
	c := &snapshotCache[T]{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached snapshot if valid, or nil if the cache is expired or empty.
func (c *snapshotCache[T]) get() []T {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if value := c.value.Load(); value != nil {
				if v, ok := value.([]T); ok {
					return v
				}
			}
		}
	}
	return nil
}

// set stores a snapshot in the cache with TTL.
func (c *snapshotCache[T]) set(value []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.value.Store(value)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *snapshotCache[T]) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the optimization routes.
type Handler struct {
	optimizer    service.Optimizer
	catalog      service.CatalogService
	coupons      service.CouponService
	productCache *snapshotCache[model.Product]
	couponCache  *snapshotCache[model.Coupon]
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSnapshotCacheTTL sets the TTL for catalog and coupon snapshot caching.
func WithSnapshotCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.productCache = newSnapshotCache[model.Product](ttl)
		h.couponCache = newSnapshotCache[model.Coupon](ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.Optimizer, catalog service.CatalogService, coupons service.CouponService, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer:    optimizer,
		catalog:      catalog,
		coupons:      coupons,
		productCache: newSnapshotCache[model.Product](30 * time.Second),
		couponCache:  newSnapshotCache[model.Coupon](30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getProducts retrieves the product catalog from cache or the catalog service.
func (h *Handler) getProducts(ctx context.Context) []model.Product {
	if products := h.productCache.get(); products != nil {
		metrics.RecordCacheOperation("products_get", "hit")
		return products
	}
	metrics.RecordCacheOperation("products_get", "miss")

	if h.catalog == nil {
		return service.DefaultProducts
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil || len(products) == 0 {
		return service.DefaultProducts
	}

	h.productCache.set(products)
	return products
}

// getCoupons retrieves the coupon book from cache or the coupon service.
func (h *Handler) getCoupons(ctx context.Context) []model.Coupon {
	if coupons := h.couponCache.get(); coupons != nil {
		metrics.RecordCacheOperation("coupons_get", "hit")
		return coupons
	}
	metrics.RecordCacheOperation("coupons_get", "miss")

	if h.coupons == nil {
		return service.DefaultCoupons
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	coupons, err := h.coupons.ListCoupons(ctx)
	if err != nil || len(coupons) == 0 {
		return service.DefaultCoupons
	}

	h.couponCache.set(coupons)
	return coupons
}

// InvalidateSnapshotCaches invalidates the catalog and coupon caches.
// Call this when catalog or coupon data is reseeded.
func (h *Handler) InvalidateSnapshotCaches() {
	h.productCache.invalidate()
	h.couponCache.invalidate()
}

// Optimize handles POST /api/optimize requests.
//
// @Summary      Optimize a shopping list
// @Description  Builds a shopping plan for the given list: matches items to store products, applies stacked coupons, and returns per-store plans with action steps and rebate opportunities. Set allow_multi_store to split the list across stores. Supports idempotency via Idempotency-Key header.
// @Tags         Optimization
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.OptimizeRequest true "Shopping list to optimize"
// @Success      200 {object} dto.SuccessResponse "Optimization result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordOptimization(0, "validation_error")
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "optimize", "Shopping list optimization requested", map[string]interface{}{
				"item_count":  len(req.ShoppingList),
				"multi_store": req.AllowMultiStore,
			})
		}
	}

	ctx := c.Request.Context()
	products := h.getProducts(ctx)
	coupons := h.getCoupons(ctx)

	start := time.Now()
	result := h.optimizer.Optimize(req.ToModel(), products, coupons)
	duration := time.Since(start)

	metrics.RecordOptimization(duration, "success")
	metrics.RecordSavings(result.TotalSavings)
	builder.SuccessOK(result)
}

// QuickOptimize handles POST /api/quick-optimize requests.
//
// @Summary      Quick shopping list optimization
// @Description  Optimizes a list of bare item names passed as query parameters, one unit each, and returns a condensed summary instead of full store plans. Repeat the items parameter for each item.
// @Tags         Optimization
// @Produce      json
// @Param        items query []string true "Item names" collectionFormat(multi)
// @Param        stores query []string false "Restrict to these stores" collectionFormat(multi)
// @Param        multi_store query bool false "Allow splitting across stores"
// @Success      200 {object} dto.SuccessResponse "Condensed optimization summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quick-optimize [post]
func (h *Handler) QuickOptimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuickOptimizeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordOptimization(0, "validation_error")
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	ctx := c.Request.Context()
	products := h.getProducts(ctx)
	coupons := h.getCoupons(ctx)

	start := time.Now()
	result := h.optimizer.Optimize(req.ToModel(), products, coupons)
	duration := time.Since(start)

	stores := make([]string, 0, len(result.Plans))
	for _, plan := range result.Plans {
		stores = append(stores, plan.StoreName)
	}

	metrics.RecordOptimization(duration, "success")
	builder.SuccessOK(dto.QuickOptimizeResponse{
		GrandTotal:        result.GrandTotal,
		TotalSavings:      result.TotalSavings,
		SavingsPercentage: result.SavingsPercentage,
		StoresToVisit:     stores,
		ActionSteps:       result.ActionSteps,
	})
}
