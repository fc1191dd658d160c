package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/core/domain/model/product"
	"deliveryapi/internal/core/domain/model/restaurant"
	"deliveryapi/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetActiveByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAllActive(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) HasOrders(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetAllActive(ctx context.Context) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetAllByCategory(ctx context.Context, category string) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) SearchByName(ctx context.Context, name string) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRestaurantRepository) HasProducts(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllAvailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllUnavailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllAvailableByRestaurantAndCategory(ctx context.Context, restaurantID kernel.ID, category string) ([]*product.Product, error) {
	args := m.Called(ctx, restaurantID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) CountByRestaurantAndAvailability(ctx context.Context, restaurantID kernel.ID, available bool) (int64, error) {
	args := m.Called(ctx, restaurantID, available)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomerAndStatus(ctx context.Context, customerID kernel.ID, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, customerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomerAndPeriod(ctx context.Context, customerID kernel.ID, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByPeriod(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

func (m *MockUnitOfWork) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

// newFactoryFor wires a factory that hands out the given unit of work once.
func newFactoryFor(uow ports.UnitOfWork) *MockUnitOfWorkFactory {
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}
