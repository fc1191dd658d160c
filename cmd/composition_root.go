package cmd

import (
	"gorm.io/gorm"

	"deliveryapi/internal/adapters/out/postgres"
	"deliveryapi/internal/core/application/services"
)

// CompositionRoot wires the application services to their infrastructure
// dependencies. All construction happens here so the rest of the code only
// sees interfaces.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root on top of an open GORM
// connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateCustomerService builds the customer application service.
func (c *CompositionRoot) CreateCustomerService() services.CustomerService {
	return services.NewCustomerService(c.uowFactory)
}

// CreateRestaurantService builds the restaurant application service.
func (c *CompositionRoot) CreateRestaurantService() services.RestaurantService {
	return services.NewRestaurantService(c.uowFactory)
}

// CreateProductService builds the product application service.
func (c *CompositionRoot) CreateProductService() services.ProductService {
	return services.NewProductService(c.uowFactory)
}

// CreateOrderService builds the order application service.
func (c *CompositionRoot) CreateOrderService() services.OrderService {
	return services.NewOrderService(c.uowFactory)
}
