package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyResult(t *testing.T) {
	items := []ShoppingItem{
		{Name: "milk", Quantity: 1, Unit: "gallon"},
		{Name: "unicorn steak", Quantity: 1, Unit: "lb"},
	}

	result := EmptyResult(items)

	assert.Empty(t, result.Plans)
	assert.Zero(t, result.GrandTotal)
	assert.Zero(t, result.TotalBaseCost)
	assert.Zero(t, result.SavingsPercentage)
	assert.Equal(t, []string{"milk", "unicorn steak"}, result.UnfulfilledItems)
	assert.NotNil(t, result.ActionSteps)
	assert.NotNil(t, result.RebateOpportunities)
}

func TestEmptyResult_NoItems(t *testing.T) {
	result := EmptyResult(nil)

	assert.Empty(t, result.UnfulfilledItems)
	assert.NotNil(t, result.UnfulfilledItems)
}
