package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

func TestOptimize_SingleItemNoCoupons(t *testing.T) {
	svc := NewOptimizerService()
	products := []model.Product{
		{StoreName: "Walmart", ItemName: "Whole Milk", Brand: "Great Value", PackageSize: 1, PackageUnit: "gallon", Price: 3.48, Category: "dairy", InStock: true},
	}
	req := model.OptimizationRequest{
		ShoppingList:    []model.ShoppingItem{{Name: "milk", Quantity: 1, Unit: "gallon"}},
		PreferredStores: []string{"Walmart"},
	}

	result := svc.Optimize(req, products, nil)

	require.Len(t, result.Plans, 1)
	plan := result.Plans[0]
	assert.Equal(t, "Walmart", plan.StoreName)
	require.Len(t, plan.Items, 1)

	item := plan.Items[0]
	assert.Equal(t, 1, item.QuantityToBuy)
	assert.InDelta(t, 3.48, item.BaseCost, 0.001)
	assert.InDelta(t, 3.48, item.FinalCost, 0.001)
	assert.Zero(t, item.Savings)
	assert.Empty(t, item.AppliedCoupons)
	assert.Empty(t, result.UnfulfilledItems)
	assert.InDelta(t, 3.48, result.GrandTotal, 0.001)
	assert.Zero(t, result.SavingsPercentage)
}

func TestOptimize_ManufacturerCouponApplied(t *testing.T) {
	svc := NewOptimizerService()
	products := []model.Product{
		{StoreName: "Walmart", ItemName: "Spaghetti Pasta", Brand: "Barilla", PackageSize: 1, PackageUnit: "lb", Price: 1.48, Category: "pasta", InStock: true},
	}
	coupons := []model.Coupon{
		{ID: "mfr-barilla-1", CouponType: model.CouponManufacturer, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$0.75 off 2 Barilla pasta", ItemFilter: "pasta", BrandFilter: "Barilla", Value: 0.75, MinQuantity: 2, Source: "coupons.com"},
	}
	req := model.OptimizationRequest{
		ShoppingList:    []model.ShoppingItem{{Name: "pasta", Quantity: 2, Unit: "lb"}},
		PreferredStores: []string{"Walmart"},
	}

	result := svc.Optimize(req, products, coupons)

	require.Len(t, result.Plans, 1)
	require.Len(t, result.Plans[0].Items, 1)

	item := result.Plans[0].Items[0]
	assert.Equal(t, 2, item.QuantityToBuy)
	assert.InDelta(t, 2.96, item.BaseCost, 0.001)
	assert.InDelta(t, 2.21, item.FinalCost, 0.001)
	assert.InDelta(t, 0.75, item.Savings, 0.001)
	require.Len(t, item.AppliedCoupons, 1)
	assert.Equal(t, "mfr-barilla-1", item.AppliedCoupons[0].CouponID)
}

func TestOptimize_UnfulfilledItem(t *testing.T) {
	svc := NewOptimizerService()
	req := model.OptimizationRequest{
		ShoppingList: []model.ShoppingItem{
			{Name: "milk", Quantity: 1, Unit: "gallon"},
			{Name: "unicorn steak", Quantity: 1, Unit: "lb"},
		},
	}

	result := svc.Optimize(req, DefaultProducts, DefaultCoupons)

	require.Len(t, result.Plans, 1)
	assert.Equal(t, []string{"unicorn steak"}, result.UnfulfilledItems)
}

func TestOptimize_EmptyShoppingList(t *testing.T) {
	svc := NewOptimizerService()

	result := svc.Optimize(model.OptimizationRequest{}, DefaultProducts, DefaultCoupons)

	assert.Empty(t, result.Plans)
	assert.Zero(t, result.GrandTotal)
	assert.Zero(t, result.TotalBaseCost)
	assert.Zero(t, result.SavingsPercentage)
	assert.Empty(t, result.UnfulfilledItems)
}

func TestOptimize_SingleStorePicksCheapestStore(t *testing.T) {
	svc := NewOptimizerService()
	products := []model.Product{
		{StoreName: "Target", ItemName: "Whole Wheat Bread", Brand: "Good & Gather", PackageSize: 1, PackageUnit: "count", Price: 2.99, Category: "bakery", InStock: true},
		{StoreName: "Walmart", ItemName: "Whole Wheat Bread", Brand: "Great Value", PackageSize: 1, PackageUnit: "count", Price: 1.48, Category: "bakery", InStock: true},
	}
	req := model.OptimizationRequest{
		ShoppingList:    []model.ShoppingItem{{Name: "bread", Quantity: 1, Unit: "count"}},
		PreferredStores: []string{"Target", "Walmart"},
	}

	result := svc.Optimize(req, products, nil)

	require.Len(t, result.Plans, 1)
	assert.Equal(t, "Walmart", result.Plans[0].StoreName)
}

func TestOptimize_SingleStoreTieKeepsFirstStore(t *testing.T) {
	svc := NewOptimizerService()
	products := []model.Product{
		{StoreName: "Target", ItemName: "Eggs", PackageSize: 12, PackageUnit: "count", Price: 2.99, Category: "dairy", InStock: true},
		{StoreName: "Walmart", ItemName: "Eggs", PackageSize: 12, PackageUnit: "count", Price: 2.99, Category: "dairy", InStock: true},
	}
	req := model.OptimizationRequest{
		ShoppingList:    []model.ShoppingItem{{Name: "eggs", Quantity: 12, Unit: "count"}},
		PreferredStores: []string{"Target", "Walmart"},
	}

	result := svc.Optimize(req, products, nil)

	require.Len(t, result.Plans, 1)
	assert.Equal(t, "Target", result.Plans[0].StoreName)
}

func TestOptimize_MultiStoreSplitsAcrossStores(t *testing.T) {
	svc := NewOptimizerService()
	products := []model.Product{
		{StoreName: "Target", ItemName: "Coffee", Brand: "Starbucks", PackageSize: 12, PackageUnit: "oz", Price: 5.00, Category: "beverages", InStock: true},
		{StoreName: "Target", ItemName: "Whole Milk", PackageSize: 1, PackageUnit: "gallon", Price: 4.99, Category: "dairy", InStock: true},
		{StoreName: "Walmart", ItemName: "Coffee", Brand: "Folgers", PackageSize: 12, PackageUnit: "oz", Price: 8.00, Category: "beverages", InStock: true},
		{StoreName: "Walmart", ItemName: "Whole Milk", PackageSize: 1, PackageUnit: "gallon", Price: 3.48, Category: "dairy", InStock: true},
	}
	req := model.OptimizationRequest{
		ShoppingList: []model.ShoppingItem{
			{Name: "coffee", Quantity: 12, Unit: "oz"},
			{Name: "milk", Quantity: 1, Unit: "gallon"},
		},
		PreferredStores: []string{"Target", "Walmart"},
		AllowMultiStore: true,
	}

	result := svc.Optimize(req, products, nil)

	require.Len(t, result.Plans, 2)
	assert.Equal(t, "Target", result.Plans[0].StoreName)
	assert.Equal(t, "Walmart", result.Plans[1].StoreName)
	assert.InDelta(t, 5.00+3.48, result.GrandTotal, 0.001)
}

func TestOptimize_MultiStoreNeverWorseThanSingleStore(t *testing.T) {
	svc := NewOptimizerService()
	req := model.OptimizationRequest{
		ShoppingList: []model.ShoppingItem{
			{Name: "milk", Quantity: 1, Unit: "gallon"},
			{Name: "pasta", Quantity: 2, Unit: "lb"},
			{Name: "coffee", Quantity: 12, Unit: "oz"},
			{Name: "eggs", Quantity: 12, Unit: "count"},
		},
	}

	single := svc.Optimize(req, DefaultProducts, DefaultCoupons)

	multiReq := req
	multiReq.AllowMultiStore = true
	multi := svc.Optimize(multiReq, DefaultProducts, DefaultCoupons)

	assert.LessOrEqual(t, multi.GrandTotal, single.GrandTotal)
}

func TestOptimize_Deterministic(t *testing.T) {
	svc := NewOptimizerService()
	req := model.OptimizationRequest{
		ShoppingList: []model.ShoppingItem{
			{Name: "milk", Quantity: 1, Unit: "gallon"},
			{Name: "bread", Quantity: 1, Unit: "count"},
			{Name: "chips", Quantity: 13, Unit: "oz"},
		},
		RebateApps: []string{"Ibotta"},
	}

	first := svc.Optimize(req, DefaultProducts, DefaultCoupons)
	second := svc.Optimize(req, DefaultProducts, DefaultCoupons)

	assert.Equal(t, first, second)
}

func TestOptimize_SavingsRoundTrip(t *testing.T) {
	svc := NewOptimizerService()
	req := model.OptimizationRequest{
		ShoppingList: []model.ShoppingItem{
			{Name: "pasta", Quantity: 2, Unit: "lb"},
			{Name: "sauce", Quantity: 24, Unit: "oz"},
			{Name: "coffee", Quantity: 12, Unit: "oz"},
		},
		AllowMultiStore: true,
	}

	result := svc.Optimize(req, DefaultProducts, DefaultCoupons)

	for _, plan := range result.Plans {
		for _, item := range plan.Items {
			assert.InDelta(t, item.BaseCost-item.FinalCost, item.Savings, 0.011)
			assert.GreaterOrEqual(t, item.FinalCost, 0.0)
		}
	}
}

func TestOptimize_UnknownUnitAddsNote(t *testing.T) {
	svc := NewOptimizerService()
	products := []model.Product{
		{StoreName: "Walmart", ItemName: "Orange Juice", PackageSize: 52, PackageUnit: "oz", Price: 3.98, Category: "beverages", InStock: true},
	}
	req := model.OptimizationRequest{
		ShoppingList: []model.ShoppingItem{{Name: "juice", Quantity: 2, Unit: "liter"}},
	}

	result := svc.Optimize(req, products, nil)

	require.Len(t, result.Plans, 1)
	require.Len(t, result.Plans[0].Items, 1)
	require.Len(t, result.Plans[0].Items[0].Notes, 1)
	assert.Contains(t, result.Plans[0].Items[0].Notes[0], "no conversion from liter to oz")
}

func TestOptimize_DefaultsToAllCatalogStores(t *testing.T) {
	svc := NewOptimizerService()
	req := model.OptimizationRequest{
		ShoppingList: []model.ShoppingItem{{Name: "milk", Quantity: 1, Unit: "gallon"}},
	}

	result := svc.Optimize(req, DefaultProducts, nil)

	require.Len(t, result.Plans, 1)
	// Cheapest gallon of milk in the built-in catalog is at Walmart.
	assert.Equal(t, "Walmart", result.Plans[0].StoreName)
}
