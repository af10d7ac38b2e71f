package model

// Product represents a purchasable product at a specific store.
//
// @Description Store catalog entry with package size, unit, and price
type Product struct {
	// StoreName is the store carrying this product
	StoreName string `json:"store_name" example:"Walmart"`
	// ItemName is the product's display name
	ItemName string `json:"item_name" example:"Whole Milk"`
	// Brand is the product brand, may be empty for generic items
	Brand string `json:"brand,omitempty" example:"Great Value"`
	// PackageSize is the amount contained in one package
	PackageSize float64 `json:"package_size" example:"1"`
	// PackageUnit is the unit PackageSize is expressed in
	PackageUnit string `json:"package_unit" example:"gallon"`
	// Price is the current shelf price for one package
	Price float64 `json:"price" example:"3.48"`
	// RegularPrice is the non-promotional price, if known
	RegularPrice float64 `json:"regular_price,omitempty" example:"3.98"`
	// LoyaltyPrice is the member price, if the store has a loyalty program
	LoyaltyPrice float64 `json:"loyalty_price,omitempty" example:"3.28"`
	// Category is the store's category label for this product
	Category string `json:"category" example:"dairy"`
	// UPC is the universal product code, if known
	UPC string `json:"upc,omitempty" example:"078742352190"`
	// InStock reports whether the product is currently available
	InStock bool `json:"in_stock" example:"true"`
}

// UnitPrice returns the price per unit of package size.
// A non-positive package size yields the raw price to avoid dividing by zero.
func (p Product) UnitPrice() float64 {
	if p.PackageSize <= 0 {
		return p.Price
	}
	return p.Price / p.PackageSize
}
