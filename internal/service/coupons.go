package service

import (
	"context"

	"github.com/couponsentinel/optimizer-service/internal/domain/model"
	"github.com/couponsentinel/optimizer-service/internal/repository"
)

// CouponService supplies the coupon snapshot an optimization run works on.
type CouponService interface {
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
}

// CouponServiceImpl implements CouponService backed by MongoDB with the
// built-in coupon book as fallback, same degradation rules as the catalog.
type CouponServiceImpl struct {
	couponsRepo repository.CouponsRepositoryInterface
}

// NewCouponService creates a new coupon service.
func NewCouponService(couponsRepo repository.CouponsRepositoryInterface) CouponService {
	if couponsRepo == nil {
		return &CouponServiceImpl{}
	}
	return &CouponServiceImpl{
		couponsRepo: couponsRepo,
	}
}

// ListCoupons returns the current coupon snapshot.
func (s *CouponServiceImpl) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	if s.couponsRepo == nil {
		return DefaultCoupons, nil
	}

	coupons, err := s.couponsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(coupons) == 0 {
		return DefaultCoupons, nil
	}
	return coupons, nil
}
