package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// aggregate rolls the per-store plans into the final result: totals,
// savings percentage, unfulfilled items, action steps, and rebates.
// Monetary totals are rounded to 2 decimals here, at the aggregation
// boundary, to avoid compounding rounding error; the savings percentage
// is rounded to 1 decimal.
func (s *OptimizerService) aggregate(req model.OptimizationRequest, plans []model.StorePlan, coupons []model.Coupon) model.OptimizationResult {
	if plans == nil {
		plans = []model.StorePlan{}
	}

	var grandTotal, totalBase, totalSavings float64
	for _, plan := range plans {
		grandTotal += plan.FinalTotal
		totalBase += plan.Subtotal
		totalSavings += plan.EstimatedSavings
	}

	savingsPct := 0.0
	if totalBase > 0 {
		savingsPct = totalSavings / totalBase * 100
	}

	fulfilled := make(map[string]bool)
	for _, plan := range plans {
		for _, item := range plan.Items {
			fulfilled[strings.ToLower(item.Item.Name)] = true
		}
	}

	unfulfilled := []string{}
	for _, requested := range req.ShoppingList {
		if !fulfilled[strings.ToLower(requested.Name)] {
			unfulfilled = append(unfulfilled, requested.Name)
		}
	}

	rebates := []model.RebateOpportunity{}
	for _, plan := range plans {
		for _, item := range plan.Items {
			rebates = append(rebates, RebateOpportunities(item.Product, coupons, req.RebateApps)...)
		}
	}

	return model.OptimizationResult{
		Plans:               plans,
		GrandTotal:          round2(grandTotal),
		TotalBaseCost:       round2(totalBase),
		TotalSavings:        round2(totalSavings),
		SavingsPercentage:   round1(savingsPct),
		UnfulfilledItems:    unfulfilled,
		ActionSteps:         ActionSteps(plans),
		RebateOpportunities: rebates,
	}
}

// ActionSteps renders a human-readable shopping walkthrough: one block per
// store with the coupons to clip, the lines to buy, and the store total.
// Clip entries are deduplicated preserving first appearance.
func ActionSteps(plans []model.StorePlan) []string {
	steps := []string{}

	for i, plan := range plans {
		if len(plans) > 1 {
			steps = append(steps, fmt.Sprintf("**Stop %d: %s**", i+1, plan.StoreName))
		} else {
			steps = append(steps, fmt.Sprintf("**Shop at %s**", plan.StoreName))
		}

		var clips []string
		seen := make(map[string]bool)
		for _, item := range plan.Items {
			for _, coupon := range item.AppliedCoupons {
				if !seen[coupon.Description] {
					seen[coupon.Description] = true
					clips = append(clips, coupon.Description)
				}
			}
		}

		if len(clips) > 0 {
			steps = append(steps, "Before shopping:")
			for _, clip := range clips {
				steps = append(steps, fmt.Sprintf("  • Clip: %s", clip))
			}
		}

		steps = append(steps, "Buy:")
		for _, item := range plan.Items {
			display := item.Product.ItemName
			if item.Product.Brand != "" {
				display = item.Product.Brand + " " + display
			}
			size := formatSize(item.Product.PackageSize, item.Product.PackageUnit)
			steps = append(steps, fmt.Sprintf(
				"  • %dx %s (%s) = $%.2f",
				item.QuantityToBuy, display, size, item.FinalCost))
		}

		steps = append(steps, fmt.Sprintf("Total at %s: $%.2f", plan.StoreName, plan.FinalTotal))
		steps = append(steps, "")
	}

	return steps
}

func formatSize(size float64, unit string) string {
	return strconv.FormatFloat(size, 'f', -1, 64) + " " + unit
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
