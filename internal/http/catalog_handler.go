package http

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/couponsentinel/optimizer-service/internal/domain/dto"
	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// CatalogHandler provides HTTP handlers for store, item, coupon, and
// category listings.
type CatalogHandler struct {
	handler *Handler
}

// NewCatalogHandler creates a new CatalogHandler backed by the same snapshot
// caches the optimization handler uses.
func NewCatalogHandler(handler *Handler) *CatalogHandler {
	return &CatalogHandler{handler: handler}
}

// Stores handles GET /api/stores requests.
//
// @Summary      List supported stores
// @Description  Returns the stores the optimizer knows about.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Store listing"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/stores [get]
func (h *CatalogHandler) Stores(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stores := storeList(h.handler.getProducts(c.Request.Context()))
	builder.SuccessOK(dto.StoresResponse{
		Stores: stores,
		Count:  len(stores),
	})
}

// Items handles GET /api/items requests.
//
// @Summary      List catalog items
// @Description  Returns the product catalog, optionally filtered by store and category.
// @Tags         Catalog
// @Produce      json
// @Param        store query string false "Filter by store name"
// @Param        category query string false "Filter by category"
// @Success      200 {object} dto.SuccessResponse "Catalog listing"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/items [get]
func (h *CatalogHandler) Items(c *gin.Context) {
	builder := NewResponseBuilder(c)

	store := c.Query("store")
	category := c.Query("category")

	products := h.handler.getProducts(c.Request.Context())
	items := make([]dto.CatalogItemResponse, 0, len(products))
	for _, p := range products {
		if store != "" && !strings.EqualFold(p.StoreName, store) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		items = append(items, dto.CatalogItemResponse{
			Store:     p.StoreName,
			Name:      p.ItemName,
			Brand:     p.Brand,
			Price:     p.Price,
			Size:      formatPackage(p.PackageSize, p.PackageUnit),
			UnitPrice: roundCents(p.UnitPrice()),
			Category:  p.Category,
		})
	}

	builder.SuccessOK(dto.ItemsResponse{
		Items: items,
		Count: len(items),
	})
}

// Coupons handles GET /api/coupons requests.
//
// @Summary      List available coupons
// @Description  Returns the coupon book, optionally filtered by store and coupon type. The store filter keeps coupons scoped to that store plus coupons valid anywhere.
// @Tags         Catalog
// @Produce     json
// @Param        store query string false "Filter by store name"
// @Param        type query string false "Filter by coupon type"
// @Success      200 {object} dto.SuccessResponse "Coupon listing"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/coupons [get]
func (h *CatalogHandler) Coupons(c *gin.Context) {
	builder := NewResponseBuilder(c)

	store := c.Query("store")
	couponType := c.Query("type")

	coupons := h.handler.getCoupons(c.Request.Context())
	summaries := make([]dto.CouponSummaryResponse, 0, len(coupons))
	for _, coupon := range coupons {
		if store != "" && !strings.EqualFold(coupon.StoreScope, "any") && !strings.EqualFold(coupon.StoreScope, store) {
			continue
		}
		if couponType != "" && !strings.EqualFold(string(coupon.CouponType), couponType) {
			continue
		}
		summaries = append(summaries, dto.CouponSummaryResponse{
			ID:          coupon.ID,
			Type:        string(coupon.CouponType),
			Store:       coupon.StoreScope,
			Description: coupon.Description,
			Value:       coupon.Value,
			ItemFilter:  coupon.ItemFilter,
			Source:      coupon.Source,
		})
	}

	builder.SuccessOK(dto.CouponsResponse{
		Coupons: summaries,
		Count:   len(summaries),
	})
}

// Categories handles GET /api/categories requests.
//
// @Summary      List product categories
// @Description  Returns the distinct product categories in the catalog, sorted alphabetically.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Category listing"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products := h.handler.getProducts(c.Request.Context())
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)

	builder.SuccessOK(dto.CategoriesResponse{
		Categories: categories,
		Count:      len(categories),
	})
}

// storeList returns the distinct store names in catalog order.
func storeList(products []model.Product) []string {
	seen := make(map[string]bool)
	stores := make([]string, 0)
	for _, p := range products {
		if seen[p.StoreName] {
			continue
		}
		seen[p.StoreName] = true
		stores = append(stores, p.StoreName)
	}
	return stores
}

// formatPackage renders a package size like "1 gallon" or "26.5 oz".
func formatPackage(size float64, unit string) string {
	return strconv.FormatFloat(size, 'f', -1, 64) + " " + unit
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
