package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"deliveryapi/internal/core/application/services"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func restoredOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		mustID(t, id), mustID(t, 7), status, mustMoney(t, "59.90"),
		time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestOrderService_Create_Success(t *testing.T) {
	ctx := context.Background()
	placer := restoredCustomer(t, 7, true)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, 7)).Return(placer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	o, err := svc.Create(ctx, mustID(t, 7), mustMoney(t, "59.90"))

	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOrderService_Create_InactiveCustomer(t *testing.T) {
	ctx := context.Background()
	placer := restoredCustomer(t, 7, false)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, 7)).Return(placer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	_, err := svc.Create(ctx, mustID(t, 7), mustMoney(t, "59.90"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "cannot create order for inactive customer")
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestOrderService_Create_UnknownCustomer(t *testing.T) {
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, 7)).
			Return(nil, errs.NewObjectNotFoundError("customerId", 7)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	_, err := svc.Create(ctx, mustID(t, 7), mustMoney(t, "59.90"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderService_Create_InvalidTotal(t *testing.T) {
	ctx := context.Background()

	factory := new(MockUnitOfWorkFactory)
	svc := services.NewOrderService(factory)

	_, err := svc.Create(ctx, mustID(t, 7), kernel.Money{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestOrderService_Confirm_Success(t *testing.T) {
	ctx := context.Background()
	existing := restoredOrder(t, 42, order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	o, err := svc.Confirm(ctx, mustID(t, 42))

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, o.Status())
}

func TestOrderService_Confirm_IllegalTransition(t *testing.T) {
	ctx := context.Background()
	existing := restoredOrder(t, 42, order.Delivered)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	_, err := svc.Confirm(ctx, mustID(t, 42))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Equal(t, order.Delivered, existing.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_ChangeStatus_Success(t *testing.T) {
	ctx := context.Background()
	existing := restoredOrder(t, 42, order.InPreparation)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	o, err := svc.ChangeStatus(ctx, mustID(t, 42), order.OutForDelivery)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, o.Status())
}

func TestOrderService_GetStatus(t *testing.T) {
	ctx := context.Background()
	existing := restoredOrder(t, 42, order.OutForDelivery)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	status, err := svc.GetStatus(ctx, mustID(t, 42))

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, status)
}

func TestOrderService_ListByStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()

	factory := new(MockUnitOfWorkFactory)
	svc := services.NewOrderService(factory)

	_, err := svc.ListByStatus(ctx, order.Unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestOrderService_ListByCustomer_UnknownCustomer(t *testing.T) {
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, 7)).
			Return(nil, errs.NewObjectNotFoundError("customerId", 7)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	_, err := svc.ListByCustomer(ctx, mustID(t, 7))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestOrderService_Periods(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("should reject inverted period", func(t *testing.T) {
		factory := new(MockUnitOfWorkFactory)
		svc := services.NewOrderService(factory)

		_, err := svc.ListByPeriod(ctx, to, from)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should reject zero period bounds", func(t *testing.T) {
		factory := new(MockUnitOfWorkFactory)
		svc := services.NewOrderService(factory)

		_, err := svc.TotalRevenue(ctx, time.Time{}, to)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should sum revenue over the period", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("TotalRevenue", ctx, from, to).
				Return(decimal.RequireFromString("179.70"), nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		svc := services.NewOrderService(newFactoryFor(uow))
		revenue, err := svc.TotalRevenue(ctx, from, to)

		require.NoError(t, err)
		assert.Equal(t, "179.7", revenue.String())
	})
}

func TestOrderService_ListByCustomerAndStatus(t *testing.T) {
	ctx := context.Background()
	placer := restoredCustomer(t, 7, true)
	history := []*order.Order{restoredOrder(t, 42, order.Confirmed)}

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, 7)).Return(placer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByCustomerAndStatus", ctx, mustID(t, 7), order.Confirmed).
			Return(history, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	orders, err := svc.ListByCustomerAndStatus(ctx, mustID(t, 7), order.Confirmed)

	require.NoError(t, err)
	assert.Equal(t, history, orders)
	uow.AssertExpectations(t)
}

func TestOrderService_ListByCustomerAndStatus_InvalidStatus(t *testing.T) {
	factory := new(MockUnitOfWorkFactory)
	svc := services.NewOrderService(factory)

	_, err := svc.ListByCustomerAndStatus(context.Background(), mustID(t, 7), order.Unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestOrderService_ListByCustomerAndPeriod(t *testing.T) {
	ctx := context.Background()
	placer := restoredCustomer(t, 7, true)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	history := []*order.Order{restoredOrder(t, 42, order.Pending)}

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, mustID(t, 7)).Return(placer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByCustomerAndPeriod", ctx, mustID(t, 7), from, to).
			Return(history, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	orders, err := svc.ListByCustomerAndPeriod(ctx, mustID(t, 7), from, to)

	require.NoError(t, err)
	assert.Equal(t, history, orders)
	uow.AssertExpectations(t)
}

func TestOrderService_CountByStatus(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountByStatus", ctx, order.Pending).Return(int64(3), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	count, err := svc.CountByStatus(ctx, order.Pending)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	uow.AssertExpectations(t)
}

func TestOrderService_CountByStatus_InvalidStatus(t *testing.T) {
	factory := new(MockUnitOfWorkFactory)
	svc := services.NewOrderService(factory)

	_, err := svc.CountByStatus(context.Background(), order.Unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, mustID(t, 42)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewOrderService(newFactoryFor(uow))
	err := svc.Delete(ctx, mustID(t, 42))

	require.NoError(t, err)
	uow.AssertExpectations(t)
}
