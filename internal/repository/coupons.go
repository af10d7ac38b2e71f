// Package repository provides data access for the coupon book.
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

// CouponDocument represents a coupon document.
type CouponDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CouponID     string             `bson:"coupon_id" json:"coupon_id"`
	Description  string             `bson:"description" json:"description"`
	CouponType   string             `bson:"coupon_type" json:"coupon_type"`
	DiscountType string             `bson:"discount_type" json:"discount_type"`
	StoreScope   string             `bson:"store_scope" json:"store_scope"`
	ItemFilter   string             `bson:"item_filter" json:"item_filter"`
	BrandFilter  string             `bson:"brand_filter,omitempty" json:"brand_filter,omitempty"`
	Value        float64            `bson:"value" json:"value"`
	MinQuantity  int                `bson:"min_quantity" json:"min_quantity"`
	MinSpend     float64            `bson:"min_spend,omitempty" json:"min_spend,omitempty"`
	MaxUses      int                `bson:"max_uses,omitempty" json:"max_uses,omitempty"`
	ExpiresAt    *time.Time         `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	Stackable    bool               `bson:"stackable" json:"stackable"`
	Source       string             `bson:"source" json:"source"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// ToModel converts the document to a domain coupon.
func (d CouponDocument) ToModel() model.Coupon {
	return model.Coupon{
		ID:           d.CouponID,
		Description:  d.Description,
		CouponType:   model.CouponType(d.CouponType),
		DiscountType: model.DiscountType(d.DiscountType),
		StoreScope:   d.StoreScope,
		ItemFilter:   d.ItemFilter,
		BrandFilter:  d.BrandFilter,
		Value:        d.Value,
		MinQuantity:  d.MinQuantity,
		MinSpend:     d.MinSpend,
		MaxUses:      d.MaxUses,
		ExpiresAt:    d.ExpiresAt,
		Stackable:    d.Stackable,
		Source:       d.Source,
	}
}

// CouponsRepository provides methods for coupon operations.
type CouponsRepository struct {
	collection *mongo.Collection
}

// NewCouponsRepository creates a new coupons repository.
func NewCouponsRepository(db *MongoDB) *CouponsRepository {
	return &CouponsRepository{
		collection: db.Coupons,
	}
}

// List returns the full coupon book, ordered by coupon ID.
func (r *CouponsRepository) List(ctx context.Context) ([]model.Coupon, error) {
	opts := options.Find().SetSort(bson.D{{Key: "coupon_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []CouponDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	coupons := make([]model.Coupon, len(docs))
	for i, doc := range docs {
		coupons[i] = doc.ToModel()
	}
	return coupons, nil
}

// Count returns the number of coupon documents.
func (r *CouponsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed inserts the given coupons. Used to populate an empty coupon book on startup.
func (r *CouponsRepository) Seed(ctx context.Context, coupons []model.Coupon) error {
	if len(coupons) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(coupons))
	for i, c := range coupons {
		docs[i] = CouponDocument{
			ID:           primitive.NewObjectID(),
			CouponID:     c.ID,
			Description:  c.Description,
			CouponType:   string(c.CouponType),
			DiscountType: string(c.DiscountType),
			StoreScope:   c.StoreScope,
			ItemFilter:   c.ItemFilter,
			BrandFilter:  c.BrandFilter,
			Value:        c.Value,
			MinQuantity:  c.MinQuantity,
			MinSpend:     c.MinSpend,
			MaxUses:      c.MaxUses,
			ExpiresAt:    c.ExpiresAt,
			Stackable:    c.Stackable,
			Source:       c.Source,
			UpdatedAt:    now,
		}
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
