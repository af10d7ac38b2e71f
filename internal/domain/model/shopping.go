// Package model defines the core domain entities for the optimizer service.
package model

// ShoppingItem represents a single requested item on a user's shopping list.
//
// @Description Requested shopping list entry with quantity and unit
// @Example {"name": "milk", "quantity": 1, "unit": "gallon"}
type ShoppingItem struct {
	// Name is the free-text item name the user asked for
	Name string `json:"name" example:"milk"`
	// Quantity is the requested amount, interpreted against Unit
	Quantity float64 `json:"quantity" example:"1"`
	// Unit is the unit the quantity is expressed in (count, gallon, lb, oz)
	Unit string `json:"unit" example:"gallon"`
	// BrandPreference optionally restricts matching to a preferred brand
	BrandPreference string `json:"brand_preference,omitempty" example:"Horizon"`
	// Flexible indicates the user accepts substitutes for this item
	Flexible bool `json:"flexible" example:"true"`
}

// OptimizationRequest carries the inputs for one optimization run.
//
// @Description Shopping list optimization inputs
type OptimizationRequest struct {
	// ShoppingList is the set of requested items
	ShoppingList []ShoppingItem `json:"shopping_list"`
	// ZipCode localizes store selection, informational only for now
	ZipCode string `json:"zip_code,omitempty" example:"94103"`
	// PreferredStores restricts optimization to these stores; empty means all
	PreferredStores []string `json:"preferred_stores,omitempty"`
	// AllowMultiStore permits splitting the list across stores
	AllowMultiStore bool `json:"allow_multi_store" example:"false"`
	// RebateApps lists the cash-back apps the user holds
	RebateApps []string `json:"rebate_apps,omitempty"`
}
