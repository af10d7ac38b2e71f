// Package app provides service initialization.
package app

import (
	"github.com/couponsentinel/optimizer-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer service.Optimizer
}

// InitializeServices initializes business logic services.
func InitializeServices() *ServiceComponents {
	optimizer := service.NewOptimizerService()

	return &ServiceComponents{
		Optimizer: optimizer,
	}
}
