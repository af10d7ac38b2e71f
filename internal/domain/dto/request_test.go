package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request OptimizeRequest
		wantErr error
	}{
		{
			name: "valid request",
			request: OptimizeRequest{
				ShoppingList: []ShoppingItemRequest{{Name: "milk", Quantity: 1, Unit: "gallon"}},
			},
			wantErr: nil,
		},
		{
			name:    "empty shopping list",
			request: OptimizeRequest{},
			wantErr: ErrEmptyShoppingList,
		},
		{
			name: "missing item name",
			request: OptimizeRequest{
				ShoppingList: []ShoppingItemRequest{{Quantity: 1}},
			},
			wantErr: ErrMissingItemName,
		},
		{
			name: "negative quantity",
			request: OptimizeRequest{
				ShoppingList: []ShoppingItemRequest{{Name: "milk", Quantity: -1}},
			},
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantErr, err)
			}
		})
	}
}

func TestOptimizeRequest_ToModel_AppliesDefaults(t *testing.T) {
	request := OptimizeRequest{
		ShoppingList:    []ShoppingItemRequest{{Name: "eggs"}},
		PreferredStores: []string{"Walmart"},
		AllowMultiStore: true,
		RebateApps:      []string{"Ibotta"},
	}

	input := request.ToModel()

	require.Len(t, input.ShoppingList, 1)
	assert.Equal(t, "eggs", input.ShoppingList[0].Name)
	assert.Equal(t, 1.0, input.ShoppingList[0].Quantity)
	assert.Equal(t, "count", input.ShoppingList[0].Unit)
	assert.Equal(t, []string{"Walmart"}, input.PreferredStores)
	assert.True(t, input.AllowMultiStore)
	assert.Equal(t, []string{"Ibotta"}, input.RebateApps)
}

func TestQuickOptimizeRequest_Validate(t *testing.T) {
	assert.Equal(t, ErrEmptyShoppingList, (&QuickOptimizeRequest{}).Validate())
	assert.Equal(t, ErrMissingItemName, (&QuickOptimizeRequest{Items: []string{""}}).Validate())
	assert.NoError(t, (&QuickOptimizeRequest{Items: []string{"milk"}}).Validate())
}

func TestQuickOptimizeRequest_ToModel(t *testing.T) {
	request := QuickOptimizeRequest{
		Items:      []string{"milk", "eggs"},
		Stores:     []string{"Target"},
		MultiStore: true,
	}

	input := request.ToModel()

	require.Len(t, input.ShoppingList, 2)
	assert.Equal(t, "milk", input.ShoppingList[0].Name)
	assert.Equal(t, 1.0, input.ShoppingList[0].Quantity)
	assert.Equal(t, "count", input.ShoppingList[0].Unit)
	assert.True(t, input.AllowMultiStore)
	assert.Equal(t, []string{"Target"}, input.PreferredStores)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "quantity", Message: "must be non-negative"}
	assert.Equal(t, "quantity: must be non-negative", err.Error())
}
