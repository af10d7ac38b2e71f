package service

import (
	"math"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

type unitPair struct {
	from string
	to   string
}

// conversionFactors maps a (requested unit, package unit) pair to the factor
// applied to the requested quantity before dividing by package size.
var conversionFactors = map[unitPair]float64{
	{"count", "count"}:   1,
	{"gallon", "gallon"}: 1,
	{"lb", "lb"}:         1,
	{"oz", "oz"}:         1,
	{"oz", "lb"}:         16,
	{"lb", "oz"}:         1.0 / 16.0,
}

// PackagesNeeded returns how many packages of a product cover the requested
// quantity, always at least 1. The second return value reports whether the
// unit pair was convertible; when it is false the count falls back to
// max(1, floor(quantity)) and callers should surface a caveat to the user.
func PackagesNeeded(requested model.ShoppingItem, product model.Product) (int, bool) {
	if requested.Unit == product.PackageUnit {
		return ceilPackages(requested.Quantity, product.PackageSize), true
	}

	if factor, ok := conversionFactors[unitPair{requested.Unit, product.PackageUnit}]; ok {
		return ceilPackages(requested.Quantity*factor, product.PackageSize), true
	}

	fallback := int(requested.Quantity)
	if fallback < 1 {
		fallback = 1
	}
	return fallback, false
}

func ceilPackages(needed, packageSize float64) int {
	if packageSize <= 0 {
		return 1
	}
	n := int(math.Ceil(needed / packageSize))
	if n < 1 {
		return 1
	}
	return n
}
