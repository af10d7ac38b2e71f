package service

import (
	"math"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// CouponDiscount computes the dollar discount a single coupon yields against
// a product purchased at the given quantity. Pure function, never negative.
// Amount-off discounts never exceed the pre-discount line total. BOGO
// discounts require at least two units. Threshold offers are declared in the
// coupon taxonomy but carry no per-line pricing rule, so they yield 0.
func CouponDiscount(coupon model.Coupon, product model.Product, quantity int) float64 {
	lineTotal := product.Price * float64(quantity)

	switch coupon.DiscountType {
	case model.DiscountAmountOff:
		return math.Min(coupon.Value, lineTotal)
	case model.DiscountPercentOff:
		return lineTotal * coupon.Value
	case model.DiscountBogoFree:
		if quantity >= 2 {
			return product.Price
		}
		return 0
	case model.DiscountBogoHalf:
		if quantity >= 2 {
			return product.Price * 0.5
		}
		return 0
	}

	return 0
}
