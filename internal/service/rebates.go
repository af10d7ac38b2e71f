package service

import (
	"fmt"
	"strings"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// RebateOpportunities returns the post-purchase rebates available for a
// product through the rebate apps the user holds. Rebates never reduce the
// in-store total; they are surfaced separately with claim instructions.
func RebateOpportunities(product model.Product, coupons []model.Coupon, rebateApps []string) []model.RebateOpportunity {
	var opportunities []model.RebateOpportunity

	for _, coupon := range coupons {
		if coupon.CouponType != model.CouponRebate {
			continue
		}
		if !CouponMatches(coupon, product) {
			continue
		}
		if !containsFold(rebateApps, coupon.Source) {
			continue
		}
		opportunities = append(opportunities, model.RebateOpportunity{
			App:          coupon.Source,
			ItemName:     product.ItemName,
			RebateAmount: coupon.Value,
			Instructions: fmt.Sprintf("Submit receipt to %s for $%.2f back", coupon.Source, coupon.Value),
		})
	}

	return opportunities
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
