package service

import (
	"strings"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// CouponMatches reports whether a coupon applies to a product. The store
// scope must be "any" or the product's store (case-insensitive), and either
// the item filter must appear in the product name, category, or brand, or
// the brand filter must appear in the brand. All checks are case-insensitive
// substring containment.
func CouponMatches(coupon model.Coupon, product model.Product) bool {
	if coupon.StoreScope != "" && !strings.EqualFold(coupon.StoreScope, "any") {
		if !strings.EqualFold(coupon.StoreScope, product.StoreName) {
			return false
		}
	}

	name := strings.ToLower(product.ItemName)
	category := strings.ToLower(product.Category)
	brand := strings.ToLower(product.Brand)

	filter := strings.ToLower(coupon.ItemFilter)
	if strings.Contains(name, filter) || strings.Contains(category, filter) {
		return true
	}
	if brand != "" && strings.Contains(brand, filter) {
		return true
	}

	if coupon.BrandFilter != "" && brand != "" &&
		strings.Contains(brand, strings.ToLower(coupon.BrandFilter)) {
		return true
	}

	return false
}

// StackRule applies one class of coupons to a purchase line and returns the
// coupons it selected, each with its computed discount. Rules run in a fixed
// order reflecting real coupon stacking precedence; adding a new coupon class
// means adding a rule, not touching the existing ones.
type StackRule interface {
	CouponType() model.CouponType
	Apply(coupons []model.Coupon, product model.Product, quantity int) []model.AppliedCoupon
}

// PickBest returns a rule that applies at most one coupon of the given type,
// choosing the one with the largest discount. Ties keep the earliest coupon.
func PickBest(couponType model.CouponType) StackRule {
	return pickBestRule{couponType: couponType}
}

// ApplyAll returns a rule that applies every coupon of the given type whose
// discount is positive, in input order.
func ApplyAll(couponType model.CouponType) StackRule {
	return applyAllRule{couponType: couponType}
}

// DefaultStackRules is the stacking pipeline in precedence order:
// at most one manufacturer coupon, then all store coupons, then all BOGO
// offers. Rebates never enter the stack; they are post-purchase.
func DefaultStackRules() []StackRule {
	return []StackRule{
		PickBest(model.CouponManufacturer),
		ApplyAll(model.CouponStore),
		ApplyAll(model.CouponBogo),
	}
}

type pickBestRule struct {
	couponType model.CouponType
}

func (r pickBestRule) CouponType() model.CouponType { return r.couponType }

func (r pickBestRule) Apply(coupons []model.Coupon, product model.Product, quantity int) []model.AppliedCoupon {
	bestIdx := -1
	bestDiscount := 0.0
	for i, coupon := range coupons {
		if discount := CouponDiscount(coupon, product, quantity); discount > bestDiscount {
			bestIdx = i
			bestDiscount = discount
		}
	}
	if bestIdx < 0 {
		return nil
	}
	return []model.AppliedCoupon{appliedCoupon(coupons[bestIdx], bestDiscount)}
}

type applyAllRule struct {
	couponType model.CouponType
}

func (r applyAllRule) CouponType() model.CouponType { return r.couponType }

func (r applyAllRule) Apply(coupons []model.Coupon, product model.Product, quantity int) []model.AppliedCoupon {
	var applied []model.AppliedCoupon
	for _, coupon := range coupons {
		if discount := CouponDiscount(coupon, product, quantity); discount > 0 {
			applied = append(applied, appliedCoupon(coupon, discount))
		}
	}
	return applied
}

func appliedCoupon(coupon model.Coupon, discount float64) model.AppliedCoupon {
	return model.AppliedCoupon{
		CouponID:       coupon.ID,
		Description:    coupon.Description,
		CouponType:     coupon.CouponType,
		DiscountAmount: discount,
	}
}

// BestStack selects the coupon combination for a purchase line using the
// default stacking pipeline and returns the applied coupons in stacking
// order plus the total discount, clamped so the line never goes negative.
func BestStack(product model.Product, quantity int, coupons []model.Coupon) ([]model.AppliedCoupon, float64) {
	return stackWith(DefaultStackRules(), product, quantity, coupons)
}

func stackWith(rules []StackRule, product model.Product, quantity int, coupons []model.Coupon) ([]model.AppliedCoupon, float64) {
	byType := make(map[model.CouponType][]model.Coupon)
	for _, coupon := range coupons {
		if CouponMatches(coupon, product) {
			byType[coupon.CouponType] = append(byType[coupon.CouponType], coupon)
		}
	}

	applied := make([]model.AppliedCoupon, 0, 2)
	total := 0.0
	for _, rule := range rules {
		for _, ac := range rule.Apply(byType[rule.CouponType()], product, quantity) {
			applied = append(applied, ac)
			total += ac.DiscountAmount
		}
	}

	if lineTotal := product.Price * float64(quantity); total > lineTotal {
		total = lineTotal
	}

	return applied, total
}
