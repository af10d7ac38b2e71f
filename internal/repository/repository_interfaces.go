// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
)

// ProductsRepositoryInterface defines the interface for catalog repository operations.
type ProductsRepositoryInterface interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByStore(ctx context.Context, storeName string) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, products []model.Product) error
}

// CouponsRepositoryInterface defines the interface for coupon repository operations.
type CouponsRepositoryInterface interface {
	List(ctx context.Context) ([]model.Coupon, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, coupons []model.Coupon) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
