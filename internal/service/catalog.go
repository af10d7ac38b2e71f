package service

import (
	"context"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
	"github.com/couponsentinel/optimizer-service/internal/repository"
)

// CatalogService supplies the product snapshot an optimization run works on.
// It is called once per run; the engine does its own store/category filtering.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	Stores(ctx context.Context) ([]string, error)
}

// CatalogServiceImpl implements CatalogService backed by MongoDB with the
// built-in catalog as fallback. A nil repository (no database configured)
// and an open circuit (repository returns nil) both degrade to the built-in
// data rather than failing the request.
type CatalogServiceImpl struct {
	productsRepo repository.ProductsRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productsRepo repository.ProductsRepositoryInterface) CatalogService {
	if productsRepo == nil {
		return &CatalogServiceImpl{}
	}
	return &CatalogServiceImpl{
		productsRepo: productsRepo,
	}
}

// ListProducts returns the current catalog snapshot.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	if s.productsRepo == nil {
		return DefaultProducts, nil
	}

	products, err := s.productsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return DefaultProducts, nil
	}
	return products, nil
}

// Stores returns the distinct store names present in the catalog.
func (s *CatalogServiceImpl) Stores(ctx context.Context) ([]string, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return storeNames(products), nil
}
