//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductDocument_ToModel(t *testing.T) {
	doc := ProductDocument{
		ID:           primitive.NewObjectID(),
		StoreName:    "Walmart",
		ItemName:     "Whole Milk",
		Brand:        "Great Value",
		PackageSize:  1,
		PackageUnit:  "gallon",
		Price:        3.48,
		RegularPrice: 3.98,
		LoyaltyPrice: 3.28,
		Category:     "dairy",
		UPC:          "078742351234",
		InStock:      true,
		UpdatedAt:    time.Now(),
	}

	product := doc.ToModel()

	assert.Equal(t, "Walmart", product.StoreName)
	assert.Equal(t, "Whole Milk", product.ItemName)
	assert.Equal(t, "Great Value", product.Brand)
	assert.Equal(t, 1.0, product.PackageSize)
	assert.Equal(t, "gallon", product.PackageUnit)
	assert.Equal(t, 3.48, product.Price)
	assert.Equal(t, 3.98, product.RegularPrice)
	assert.Equal(t, 3.28, product.LoyaltyPrice)
	assert.Equal(t, "dairy", product.Category)
	assert.Equal(t, "078742351234", product.UPC)
	assert.True(t, product.InStock)
}
