// Package repository provides data access for the store catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// ProductDocument represents a catalog product document.
type ProductDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreName    string             `bson:"store_name" json:"store_name"`
	ItemName     string             `bson:"item_name" json:"item_name"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty"`
	PackageSize  float64            `bson:"package_size" json:"package_size"`
	PackageUnit  string             `bson:"package_unit" json:"package_unit"`
	Price        float64            `bson:"price" json:"price"`
	RegularPrice float64            `bson:"regular_price,omitempty" json:"regular_price,omitempty"`
	LoyaltyPrice float64            `bson:"loyalty_price,omitempty" json:"loyalty_price,omitempty"`
	Category     string             `bson:"category" json:"category"`
	UPC          string             `bson:"upc,omitempty" json:"upc,omitempty"`
	InStock      bool               `bson:"in_stock" json:"in_stock"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// ToModel converts the document to a domain product.
func (d ProductDocument) ToModel() model.Product {
	return model.Product{
		StoreName:    d.StoreName,
		ItemName:     d.ItemName,
		Brand:        d.Brand,
		PackageSize:  d.PackageSize,
		PackageUnit:  d.PackageUnit,
		Price:        d.Price,
		RegularPrice: d.RegularPrice,
		LoyaltyPrice: d.LoyaltyPrice,
		Category:     d.Category,
		UPC:          d.UPC,
		InStock:      d.InStock,
	}
}

// ProductsRepository provides methods for catalog operations.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new catalog repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// List returns the full catalog, ordered by store then item name.
func (r *ProductsRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.find(ctx, bson.M{})
}

// ListByStore returns the catalog entries for one store.
func (r *ProductsRepository) ListByStore(ctx context.Context, storeName string) ([]model.Product, error) {
	return r.find(ctx, bson.M{"store_name": storeName})
}

func (r *ProductsRepository) find(ctx context.Context, filter bson.M) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "store_name", Value: 1}, {Key: "item_name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToModel()
	}
	return products, nil
}

// Count returns the number of catalog documents.
func (r *ProductsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed inserts the given products. Used to populate an empty catalog on startup.
func (r *ProductsRepository) Seed(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = ProductDocument{
			ID:           primitive.NewObjectID(),
			StoreName:    p.StoreName,
			ItemName:     p.ItemName,
			Brand:        p.Brand,
			PackageSize:  p.PackageSize,
			PackageUnit:  p.PackageUnit,
			Price:        p.Price,
			RegularPrice: p.RegularPrice,
			LoyaltyPrice: p.LoyaltyPrice,
			Category:     p.Category,
			UPC:          p.UPC,
			InStock:      p.InStock,
			UpdatedAt:    now,
		}
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
