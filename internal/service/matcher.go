package service

import (
	"strings"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// MatchProducts returns the candidate products that satisfy a requested item.
// A candidate matches on the first satisfied rule: requested name contained in
// the product name, then in the product category, then brand preference
// contained in the product brand. All comparisons are case-insensitive
// substring checks, and input order is preserved.
func MatchProducts(requested model.ShoppingItem, candidates []model.Product) []model.Product {
	matches := make([]model.Product, 0, len(candidates))
	term := strings.ToLower(requested.Name)
	preference := strings.ToLower(requested.BrandPreference)

	for _, product := range candidates {
		if strings.Contains(strings.ToLower(product.ItemName), term) {
			matches = append(matches, product)
			continue
		}
		if strings.Contains(strings.ToLower(product.Category), term) {
			matches = append(matches, product)
			continue
		}
		if preference != "" && product.Brand != "" &&
			strings.Contains(strings.ToLower(product.Brand), preference) {
			matches = append(matches, product)
		}
	}

	return matches
}
