// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// ShoppingItemRequest represents one shopping list entry in a request body.
//
// @Description Requested shopping list entry
type ShoppingItemRequest struct {
	// Name is the item to look for. Required.
	Name string `json:"name" binding:"required" example:"milk"`
	// Quantity is the requested amount. Must be non-negative; defaults to 1.
	Quantity float64 `json:"quantity" example:"1"`
	// Unit is the unit the quantity is expressed in. Defaults to "count".
	Unit string `json:"unit" example:"gallon"`
	// BrandPreference optionally restricts matching to a preferred brand.
	BrandPreference string `json:"brand_preference,omitempty" example:"Barilla"`
	// Flexible indicates substitutes are acceptable.
	Flexible bool `json:"flexible"`
} // @name ShoppingItemRequest

// OptimizeRequest represents the JSON request body for the optimize endpoint.
//
// The shopping list is required and must not be empty. Store and rebate-app
// filters are optional; an empty store list means all supported stores.
//
// @Description Request to optimize a shopping list across stores
// @Example {"shopping_list": [{"name": "milk", "quantity": 1, "unit": "gallon"}], "preferred_stores": ["Walmart"]}
type OptimizeRequest struct {
	// ShoppingList is the set of items to fulfill. Must not be empty.
	ShoppingList []ShoppingItemRequest `json:"shopping_list" binding:"required,min=1,dive"`
	// ZipCode localizes store selection, informational only for now.
	ZipCode string `json:"zip_code,omitempty" example:"94103"`
	// PreferredStores restricts optimization to these stores.
	PreferredStores []string `json:"preferred_stores,omitempty"`
	// AllowMultiStore permits splitting the list across stores.
	AllowMultiStore bool `json:"allow_multi_store"`
	// RebateApps lists the cash-back apps the user holds.
	RebateApps []string `json:"rebate_apps,omitempty"`
} // @name OptimizeRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrEmptyShoppingList is returned when the shopping list is missing or empty.
	ErrEmptyShoppingList = &ValidationError{
		Field:   "shopping_list",
		Message: "must contain at least one item",
	}
	// ErrInvalidQuantity is returned when an item quantity is negative.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be non-negative",
	}
	// ErrMissingItemName is returned when an item has no name.
	ErrMissingItemName = &ValidationError{
		Field:   "name",
		Message: "must not be empty",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *OptimizeRequest) Validate() error {
	if len(r.ShoppingList) == 0 {
		return ErrEmptyShoppingList
	}
	for _, item := range r.ShoppingList {
		if item.Name == "" {
			return ErrMissingItemName
		}
		if item.Quantity < 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// ToModel converts the request to the engine's input record, applying the
// quantity and unit defaults.
func (r *OptimizeRequest) ToModel() model.OptimizationRequest {
	items := make([]model.ShoppingItem, len(r.ShoppingList))
	for i, item := range r.ShoppingList {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		unit := item.Unit
		if unit == "" {
			unit = "count"
		}
		items[i] = model.ShoppingItem{
			Name:            item.Name,
			Quantity:        quantity,
			Unit:            unit,
			BrandPreference: item.BrandPreference,
			Flexible:        item.Flexible,
		}
	}
	return model.OptimizationRequest{
		ShoppingList:    items,
		ZipCode:         r.ZipCode,
		PreferredStores: r.PreferredStores,
		AllowMultiStore: r.AllowMultiStore,
		RebateApps:      r.RebateApps,
	}
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// QuickOptimizeRequest represents the simplified optimize request: bare item
// names with default quantities, bound from query parameters.
//
// @Description Simplified optimization request using item names only
type QuickOptimizeRequest struct {
	// Items is the list of item names to fulfill. Must not be empty.
	Items []string `form:"items" json:"items" binding:"required,min=1" example:"milk,eggs,bread"`
	// Stores restricts optimization to these stores.
	Stores []string `form:"stores" json:"stores,omitempty"`
	// MultiStore permits splitting the list across stores.
	MultiStore bool `form:"multi_store" json:"multi_store"`
} // @name QuickOptimizeRequest

// Validate performs custom validation on the request.
func (r *QuickOptimizeRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrEmptyShoppingList
	}
	for _, name := range r.Items {
		if name == "" {
			return ErrMissingItemName
		}
	}
	return nil
}

// ToModel converts the quick request to the engine's input record with
// one unit of each item.
func (r *QuickOptimizeRequest) ToModel() model.OptimizationRequest {
	items := make([]model.ShoppingItem, len(r.Items))
	for i, name := range r.Items {
		items[i] = model.ShoppingItem{Name: name, Quantity: 1, Unit: "count"}
	}
	return model.OptimizationRequest{
		ShoppingList:    items,
		PreferredStores: r.Stores,
		AllowMultiStore: r.MultiStore,
	}
}
