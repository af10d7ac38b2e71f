package http

import (
	"github.com/gin-gonic/gin"

	"github.com/couponsentinel/optimizer-service/internal/service"
)

// ShoppingRoutes handles optimization and catalog route registration.
type ShoppingRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
}

// NewShoppingRoutes creates a new ShoppingRoutes instance.
func NewShoppingRoutes(optimizer service.Optimizer, catalog service.CatalogService, coupons service.CouponService) *ShoppingRoutes {
	handler := NewHandler(optimizer, catalog, coupons)
	return &ShoppingRoutes{
		handler:        handler,
		catalogHandler: NewCatalogHandler(handler),
	}
}

// NewShoppingRoutesWithHandler wraps an existing Handler, sharing its
// snapshot caches.
func NewShoppingRoutesWithHandler(handler *Handler) *ShoppingRoutes {
	return &ShoppingRoutes{
		handler:        handler,
		catalogHandler: NewCatalogHandler(handler),
	}
}

// RegisterPublicRoutes registers the optimization and catalog routes.
func (r *ShoppingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", r.handler.Optimize)
	rg.POST("/quick-optimize", r.handler.QuickOptimize)

	rg.GET("/stores", r.catalogHandler.Stores)
	rg.GET("/items", r.catalogHandler.Items)
	rg.GET("/coupons", r.catalogHandler.Coupons)
	rg.GET("/categories", r.catalogHandler.Categories)
}

// GetHandler returns the underlying optimization handler.
func (r *ShoppingRoutes) GetHandler() *Handler {
	return r.handler
}
