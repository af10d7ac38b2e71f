package model

// OptimizedItem is a single purchase line in a store plan: the chosen
// product for a requested item, how many packages to buy, and the coupon
// stack applied to the line.
//
// @Description Purchase line with chosen product, quantity, and applied coupons
type OptimizedItem struct {
	// Item is the shopping list entry this line fulfills
	Item ShoppingItem `json:"item"`
	// Product is the catalog product chosen for the item
	Product Product `json:"product"`
	// QuantityToBuy is the number of packages to purchase, always >= 1
	QuantityToBuy int `json:"quantity_to_buy" example:"2"`
	// BaseCost is price * quantity before any discounts
	BaseCost float64 `json:"base_cost" example:"2.96"`
	// AppliedCoupons lists applied coupons in stacking order
	AppliedCoupons []AppliedCoupon `json:"applied_coupons"`
	// FinalCost is BaseCost minus the summed coupon discounts, never negative
	FinalCost float64 `json:"final_cost" example:"2.21"`
	// Savings is BaseCost minus FinalCost
	Savings float64 `json:"savings" example:"0.75"`
	// Notes carries caveats such as unit conversion fallbacks
	Notes []string `json:"notes,omitempty"`
}

// StorePlan groups the optimized items to purchase at one store.
//
// @Description Per-store purchase plan with subtotal and savings
type StorePlan struct {
	// StoreName is the store to visit
	StoreName string `json:"store_name" example:"Walmart"`
	// Items is the purchase lines for this store
	Items []OptimizedItem `json:"items"`
	// Subtotal is the sum of base costs before discounts
	Subtotal float64 `json:"subtotal" example:"12.44"`
	// FinalTotal is the sum of final costs after discounts
	FinalTotal float64 `json:"final_total" example:"10.87"`
	// EstimatedSavings is Subtotal minus FinalTotal
	EstimatedSavings float64 `json:"estimated_savings" example:"1.57"`
}

// RebateOpportunity surfaces a post-purchase cash-back offer. Rebates are
// paid out after the trip and are never deducted from the in-store total.
//
// @Description Post-purchase rebate offer from a cash-back app
type RebateOpportunity struct {
	// App is the rebate app offering the cash back
	App string `json:"app" example:"Ibotta"`
	// ItemName is the purchased product the rebate applies to
	ItemName string `json:"item_name" example:"Whole Milk"`
	// RebateAmount is the cash-back amount in dollars
	RebateAmount float64 `json:"rebate_amount" example:"0.25"`
	// Instructions tells the user how to claim the rebate
	Instructions string `json:"instructions" example:"Submit receipt to Ibotta for $0.25 back"`
}

// OptimizationResult is the terminal artifact of one optimization run.
//
// @Description Complete optimization result with plans, totals, and action steps
type OptimizationResult struct {
	// Plans is one purchase plan per store to visit
	Plans []StorePlan `json:"plans"`
	// GrandTotal is the sum of plan final totals
	GrandTotal float64 `json:"grand_total" example:"10.87"`
	// TotalBaseCost is the sum of plan subtotals
	TotalBaseCost float64 `json:"total_base_cost" example:"12.44"`
	// TotalSavings is TotalBaseCost minus GrandTotal
	TotalSavings float64 `json:"total_savings" example:"1.57"`
	// SavingsPercentage is TotalSavings over TotalBaseCost as a percentage
	SavingsPercentage float64 `json:"savings_percentage" example:"12.6"`
	// UnfulfilledItems lists requested item names no store could fulfill
	UnfulfilledItems []string `json:"unfulfilled_items"`
	// ActionSteps is the human-readable shopping walkthrough
	ActionSteps []string `json:"action_steps"`
	// RebateOpportunities lists post-purchase cash-back offers
	RebateOpportunities []RebateOpportunity `json:"rebate_opportunities"`
}

// EmptyResult returns a zero-cost result marking every requested item
// unfulfilled. Used when the shopping list is empty or nothing matches.
func EmptyResult(items []ShoppingItem) OptimizationResult {
	unfulfilled := make([]string, 0, len(items))
	for _, item := range items {
		unfulfilled = append(unfulfilled, item.Name)
	}
	return OptimizationResult{
		Plans:               []StorePlan{},
		UnfulfilledItems:    unfulfilled,
		ActionSteps:         []string{},
		RebateOpportunities: []RebateOpportunity{},
	}
}
