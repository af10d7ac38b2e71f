package model

import "time"

// CouponType classifies who issues a coupon and how it may stack.
type CouponType string

// Coupon types recognized by the stacking rules.
const (
	CouponManufacturer CouponType = "manufacturer"
	CouponStore        CouponType = "store"
	CouponRebate       CouponType = "rebate"
	CouponBogo         CouponType = "bogo"
	CouponThreshold    CouponType = "threshold"
)

// DiscountType describes how a coupon's value translates into a discount.
type DiscountType string

// Discount types recognized by the discount calculator.
const (
	DiscountAmountOff  DiscountType = "amount_off"
	DiscountPercentOff DiscountType = "percent_off"
	DiscountBogoFree   DiscountType = "bogo_free"
	DiscountBogoHalf   DiscountType = "bogo_half"
)

// Coupon represents a clippable coupon or rebate offer.
//
// @Description Coupon or rebate offer with applicability filters
type Coupon struct {
	// ID uniquely identifies the coupon across all sources
	ID string `json:"id" example:"mfr-barilla-1"`
	// Description is the human-readable offer text shown to the user
	Description string `json:"description" example:"$0.75 off 2 Barilla pasta"`
	// CouponType classifies the issuer (manufacturer, store, rebate, bogo, threshold)
	CouponType CouponType `json:"coupon_type" example:"manufacturer"`
	// DiscountType describes how Value is applied
	DiscountType DiscountType `json:"discount_type" example:"amount_off"`
	// StoreScope is the store this coupon is valid at, or "any"
	StoreScope string `json:"store_scope" example:"any"`
	// ItemFilter is substring-matched against item name, category, or brand
	ItemFilter string `json:"item_filter" example:"pasta"`
	// BrandFilter optionally widens matching to a specific brand
	BrandFilter string `json:"brand_filter,omitempty" example:"Barilla"`
	// Value is a dollar amount for amount_off or a fraction for percent_off
	Value float64 `json:"value" example:"0.75"`
	// MinQuantity is the advertised minimum purchase quantity
	MinQuantity int `json:"min_quantity" example:"2"`
	// MinSpend is the advertised minimum basket spend, if any
	MinSpend float64 `json:"min_spend,omitempty" example:"25"`
	// MaxUses is how many times the coupon may be redeemed, 0 for unlimited
	MaxUses int `json:"max_uses,omitempty" example:"1"`
	// ExpiresAt is the advertised expiration date, if known
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Stackable reports whether the issuer allows combining with other offers
	Stackable bool `json:"stackable" example:"true"`
	// Source names where the coupon comes from (coupons.com, Target Circle, Ibotta, ...)
	Source string `json:"source" example:"coupons.com"`
}

// AppliedCoupon records a coupon applied to a single purchase line.
//
// @Description Coupon applied to an optimized item with its computed discount
type AppliedCoupon struct {
	// CouponID references the applied coupon
	CouponID string `json:"coupon_id" example:"mfr-barilla-1"`
	// Description is the coupon's offer text
	Description string `json:"description" example:"$0.75 off 2 Barilla pasta"`
	// CouponType is the applied coupon's class
	CouponType CouponType `json:"coupon_type" example:"manufacturer"`
	// DiscountAmount is the dollar discount this coupon contributed
	DiscountAmount float64 `json:"discount_amount" example:"0.75"`
}
