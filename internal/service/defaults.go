package service

import "github.com/couponsentinel/optimizer-service/internal/domain/model"

// SupportedStores lists the stores the built-in catalog covers.
var SupportedStores = []string{"Target", "Walmart", "Costco"}

// DefaultProducts is the built-in store catalog. It seeds an empty database
// on startup and serves as the fallback when the database is unreachable.
// Replace with real price feed integrations in production.
var DefaultProducts = []model.Product{
	// Target
	{StoreName: "Target", ItemName: "Organic Whole Milk", Brand: "Good & Gather", PackageSize: 1, PackageUnit: "gallon", Price: 4.99, RegularPrice: 5.49, LoyaltyPrice: 4.49, Category: "dairy", InStock: true},
	{StoreName: "Target", ItemName: "2% Reduced Fat Milk", Brand: "Good & Gather", PackageSize: 1, PackageUnit: "gallon", Price: 3.99, Category: "dairy", InStock: true},
	{StoreName: "Target", ItemName: "Large Grade A Eggs", Brand: "Good & Gather", PackageSize: 12, PackageUnit: "count", Price: 3.49, Category: "dairy", InStock: true},
	{StoreName: "Target", ItemName: "Large Grade A Eggs", Brand: "Good & Gather", PackageSize: 18, PackageUnit: "count", Price: 4.99, Category: "dairy", InStock: true},
	{StoreName: "Target", ItemName: "Whole Wheat Bread", Brand: "Good & Gather", PackageSize: 1, PackageUnit: "count", Price: 2.99, Category: "bakery", InStock: true},
	{StoreName: "Target", ItemName: "White Sandwich Bread", Brand: "Wonder", PackageSize: 1, PackageUnit: "count", Price: 3.49, Category: "bakery", InStock: true},
	{StoreName: "Target", ItemName: "Boneless Skinless Chicken Breast", Brand: "Good & Gather", PackageSize: 1.5, PackageUnit: "lb", Price: 7.99, Category: "meat", InStock: true},
	{StoreName: "Target", ItemName: "Ground Beef 80/20", Brand: "Good & Gather", PackageSize: 1, PackageUnit: "lb", Price: 5.99, Category: "meat", InStock: true},
	{StoreName: "Target", ItemName: "Spaghetti Pasta", Brand: "Barilla", PackageSize: 1, PackageUnit: "lb", Price: 1.89, Category: "pasta", InStock: true},
	{StoreName: "Target", ItemName: "Marinara Sauce", Brand: "Rao's", PackageSize: 24, PackageUnit: "oz", Price: 8.99, Category: "pasta", InStock: true},
	{StoreName: "Target", ItemName: "Marinara Sauce", Brand: "Prego", PackageSize: 24, PackageUnit: "oz", Price: 3.29, Category: "pasta", InStock: true},
	{StoreName: "Target", ItemName: "Tortilla Chips", Brand: "Tostitos", PackageSize: 13, PackageUnit: "oz", Price: 4.99, Category: "snacks", InStock: true},
	{StoreName: "Target", ItemName: "Orange Juice", Brand: "Simply", PackageSize: 52, PackageUnit: "oz", Price: 4.49, Category: "beverages", InStock: true},
	{StoreName: "Target", ItemName: "Coffee", Brand: "Starbucks", PackageSize: 12, PackageUnit: "oz", Price: 9.99, Category: "beverages", InStock: true},

	// Walmart
	{StoreName: "Walmart", ItemName: "Whole Milk", Brand: "Great Value", PackageSize: 1, PackageUnit: "gallon", Price: 3.48, Category: "dairy", InStock: true},
	{StoreName: "Walmart", ItemName: "2% Reduced Fat Milk", Brand: "Great Value", PackageSize: 1, PackageUnit: "gallon", Price: 3.28, Category: "dairy", InStock: true},
	{StoreName: "Walmart", ItemName: "Large Grade A Eggs", Brand: "Great Value", PackageSize: 12, PackageUnit: "count", Price: 2.98, Category: "dairy", InStock: true},
	{StoreName: "Walmart", ItemName: "Large Grade A Eggs", Brand: "Great Value", PackageSize: 18, PackageUnit: "count", Price: 4.24, Category: "dairy", InStock: true},
	{StoreName: "Walmart", ItemName: "Large Grade A Eggs", Brand: "Great Value", PackageSize: 60, PackageUnit: "count", Price: 11.98, Category: "dairy", InStock: true},
	{StoreName: "Walmart", ItemName: "Whole Wheat Bread", Brand: "Great Value", PackageSize: 1, PackageUnit: "count", Price: 1.48, Category: "bakery", InStock: true},
	{StoreName: "Walmart", ItemName: "White Sandwich Bread", Brand: "Great Value", PackageSize: 1, PackageUnit: "count", Price: 1.28, Category: "bakery", InStock: true},
	{StoreName: "Walmart", ItemName: "Boneless Skinless Chicken Breast", Brand: "Great Value", PackageSize: 2.5, PackageUnit: "lb", Price: 9.97, Category: "meat", InStock: true},
	{StoreName: "Walmart", ItemName: "Ground Beef 80/20", Brand: "Great Value", PackageSize: 1, PackageUnit: "lb", Price: 4.98, Category: "meat", InStock: true},
	{StoreName: "Walmart", ItemName: "Spaghetti Pasta", Brand: "Barilla", PackageSize: 1, PackageUnit: "lb", Price: 1.48, Category: "pasta", InStock: true},
	{StoreName: "Walmart", ItemName: "Spaghetti Pasta", Brand: "Great Value", PackageSize: 1, PackageUnit: "lb", Price: 0.98, Category: "pasta", InStock: true},
	{StoreName: "Walmart", ItemName: "Marinara Sauce", Brand: "Prego", PackageSize: 24, PackageUnit: "oz", Price: 2.98, Category: "pasta", InStock: true},
	{StoreName: "Walmart", ItemName: "Marinara Sauce", Brand: "Great Value", PackageSize: 24, PackageUnit: "oz", Price: 1.98, Category: "pasta", InStock: true},
	{StoreName: "Walmart", ItemName: "Tortilla Chips", Brand: "Tostitos", PackageSize: 13, PackageUnit: "oz", Price: 4.48, Category: "snacks", InStock: true},
	{StoreName: "Walmart", ItemName: "Tortilla Chips", Brand: "Great Value", PackageSize: 13, PackageUnit: "oz", Price: 2.48, Category: "snacks", InStock: true},
	{StoreName: "Walmart", ItemName: "Orange Juice", Brand: "Simply", PackageSize: 52, PackageUnit: "oz", Price: 3.98, Category: "beverages", InStock: true},
	{StoreName: "Walmart", ItemName: "Coffee", Brand: "Folgers", PackageSize: 30.5, PackageUnit: "oz", Price: 9.98, Category: "beverages", InStock: true},

	// Costco, bulk sizes
	{StoreName: "Costco", ItemName: "Organic Whole Milk", Brand: "Kirkland", PackageSize: 2, PackageUnit: "gallon", Price: 6.99, Category: "dairy", InStock: true},
	{StoreName: "Costco", ItemName: "Cage Free Eggs", Brand: "Kirkland", PackageSize: 24, PackageUnit: "count", Price: 6.99, Category: "dairy", InStock: true},
	{StoreName: "Costco", ItemName: "Cage Free Eggs", Brand: "Kirkland", PackageSize: 60, PackageUnit: "count", Price: 14.99, Category: "dairy", InStock: true},
	{StoreName: "Costco", ItemName: "Artisan Bread", Brand: "Kirkland", PackageSize: 2, PackageUnit: "count", Price: 4.99, Category: "bakery", InStock: true},
	{StoreName: "Costco", ItemName: "Boneless Skinless Chicken Breast", Brand: "Kirkland", PackageSize: 6, PackageUnit: "lb", Price: 22.99, Category: "meat", InStock: true},
	{StoreName: "Costco", ItemName: "Ground Beef 88/12", Brand: "Kirkland", PackageSize: 4, PackageUnit: "lb", Price: 19.99, Category: "meat", InStock: true},
	{StoreName: "Costco", ItemName: "Spaghetti Pasta", Brand: "Barilla", PackageSize: 6, PackageUnit: "lb", Price: 7.99, Category: "pasta", InStock: true},
	{StoreName: "Costco", ItemName: "Marinara Sauce", Brand: "Rao's", PackageSize: 54, PackageUnit: "oz", Price: 11.99, Category: "pasta", InStock: true},
	{StoreName: "Costco", ItemName: "Tortilla Chips", Brand: "Kirkland", PackageSize: 40, PackageUnit: "oz", Price: 6.99, Category: "snacks", InStock: true},
	{StoreName: "Costco", ItemName: "Orange Juice", Brand: "Kirkland", PackageSize: 2, PackageUnit: "gallon", Price: 8.99, Category: "beverages", InStock: true},
	{StoreName: "Costco", ItemName: "Coffee", Brand: "Kirkland", PackageSize: 48, PackageUnit: "oz", Price: 16.99, Category: "beverages", InStock: true},
	{StoreName: "Costco", ItemName: "Toilet Paper", Brand: "Kirkland", PackageSize: 30, PackageUnit: "count", Price: 24.99, Category: "household", InStock: true},
	{StoreName: "Costco", ItemName: "Paper Towels", Brand: "Kirkland", PackageSize: 12, PackageUnit: "count", Price: 19.99, Category: "household", InStock: true},
}

// DefaultCoupons is the built-in coupon book, same role as DefaultProducts.
var DefaultCoupons = []model.Coupon{
	// Manufacturer coupons, valid at any store
	{ID: "mfr-barilla-1", CouponType: model.CouponManufacturer, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$0.75 off 2 Barilla pasta", ItemFilter: "pasta", BrandFilter: "Barilla", Value: 0.75, MinQuantity: 2, Stackable: true, Source: "coupons.com"},
	{ID: "mfr-tostitos-1", CouponType: model.CouponManufacturer, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$1.00 off Tostitos chips", ItemFilter: "chips", BrandFilter: "Tostitos", Value: 1.00, MinQuantity: 1, Stackable: true, Source: "newspaper"},
	{ID: "mfr-prego-1", CouponType: model.CouponManufacturer, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$0.50 off Prego sauce", ItemFilter: "sauce", BrandFilter: "Prego", Value: 0.50, MinQuantity: 1, Stackable: true, Source: "prego.com"},
	{ID: "mfr-simply-1", CouponType: model.CouponManufacturer, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$0.75 off Simply Orange Juice", ItemFilter: "orange juice", BrandFilter: "Simply", Value: 0.75, MinQuantity: 1, Stackable: true, Source: "ibotta"},
	{ID: "mfr-folgers-1", CouponType: model.CouponManufacturer, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$1.50 off Folgers coffee", ItemFilter: "coffee", BrandFilter: "Folgers", Value: 1.50, MinQuantity: 1, Stackable: true, Source: "smartsource"},

	// Target store coupons
	{ID: "target-dairy-1", CouponType: model.CouponStore, DiscountType: model.DiscountAmountOff, StoreScope: "Target", Description: "$1 off Good & Gather dairy", ItemFilter: "dairy", BrandFilter: "Good & Gather", Value: 1.00, MinQuantity: 1, Stackable: true, Source: "Target Circle"},
	{ID: "target-meat-1", CouponType: model.CouponStore, DiscountType: model.DiscountPercentOff, StoreScope: "Target", Description: "15% off meat purchase", ItemFilter: "meat", Value: 0.15, MinQuantity: 1, Stackable: true, Source: "Target Circle"},
	{ID: "target-bread-1", CouponType: model.CouponStore, DiscountType: model.DiscountAmountOff, StoreScope: "Target", Description: "$0.50 off Wonder bread", ItemFilter: "bread", BrandFilter: "Wonder", Value: 0.50, MinQuantity: 1, Stackable: true, Source: "Target Circle"},
	{ID: "target-starbucks-1", CouponType: model.CouponStore, DiscountType: model.DiscountAmountOff, StoreScope: "Target", Description: "$2 off Starbucks coffee", ItemFilter: "coffee", BrandFilter: "Starbucks", Value: 2.00, MinQuantity: 1, Stackable: true, Source: "Target Circle"},

	// Walmart store coupons
	{ID: "walmart-rollback-eggs", CouponType: model.CouponStore, DiscountType: model.DiscountAmountOff, StoreScope: "Walmart", Description: "Rollback: $0.30 off eggs", ItemFilter: "eggs", Value: 0.30, MinQuantity: 1, Stackable: true, Source: "Walmart"},
	{ID: "walmart-great-value-1", CouponType: model.CouponStore, DiscountType: model.DiscountPercentOff, StoreScope: "Walmart", Description: "10% off Great Value brand", ItemFilter: "great value", BrandFilter: "Great Value", Value: 0.10, MinQuantity: 1, Stackable: true, Source: "Walmart+"},

	// Rebates, post-purchase
	{ID: "ibotta-milk-1", CouponType: model.CouponRebate, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$0.50 back on milk", ItemFilter: "milk", Value: 0.50, MinQuantity: 1, Stackable: true, Source: "Ibotta"},
	{ID: "ibotta-eggs-1", CouponType: model.CouponRebate, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$0.75 back on eggs", ItemFilter: "eggs", Value: 0.75, MinQuantity: 1, Stackable: true, Source: "Ibotta"},
	{ID: "ibotta-bread-1", CouponType: model.CouponRebate, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$0.25 back on bread", ItemFilter: "bread", Value: 0.25, MinQuantity: 1, Stackable: true, Source: "Ibotta"},
	{ID: "fetch-any-1", CouponType: model.CouponRebate, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "25 points ($0.25) on any receipt", ItemFilter: "any", Value: 0.25, MinQuantity: 1, Stackable: true, Source: "Fetch"},
	{ID: "ibotta-chips-1", CouponType: model.CouponRebate, DiscountType: model.DiscountAmountOff, StoreScope: "any", Description: "$1.00 back on Tostitos", ItemFilter: "chips", BrandFilter: "Tostitos", Value: 1.00, MinQuantity: 1, Stackable: true, Source: "Ibotta"},

	// BOGO offers
	{ID: "target-bogo-sauce", CouponType: model.CouponBogo, DiscountType: model.DiscountBogoHalf, StoreScope: "Target", Description: "BOGO 50% off pasta sauce", ItemFilter: "sauce", Value: 0, MinQuantity: 2, Stackable: true, Source: "Target Weekly Ad"},
}
