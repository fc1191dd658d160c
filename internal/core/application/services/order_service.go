package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/errs"
)

// OrderService implements the order use cases: creation for active
// customers, lifecycle transitions through the status state machine, and
// period queries including revenue.
type OrderService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewOrderService creates an OrderService backed by the given UnitOfWork
// factory.
func NewOrderService(uowFactory ports.UnitOfWorkFactory) OrderService {
	return OrderService{uowFactory: uowFactory}
}

// Create places a new pending order for the given customer. The customer
// must exist and be active.
func (s *OrderService) Create(ctx context.Context, customerID kernel.ID, totalValue kernel.Money) (*order.Order, error) {
	o, err := order.NewOrder(customerID, totalValue)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	c, err := uow.CustomerRepository().Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, errs.NewBusinessRuleViolatedError("cannot create order for inactive customer")
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// Get retrieves an order by identifier.
func (s *OrderService) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().Get(ctx, id)
}

// GetStatus retrieves only the current lifecycle status of an order.
func (s *OrderService) GetStatus(ctx context.Context, id kernel.ID) (order.Status, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return order.Unknown, err
	}
	return o.Status(), nil
}

// List retrieves all orders grouped by status, newest first within each
// status.
func (s *OrderService) List(ctx context.Context) ([]*order.Order, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().GetAll(ctx)
}

// ListByCustomer retrieves one customer's orders, newest first. The customer
// must exist; an unknown customer is reported as not found rather than as an
// empty history.
func (s *OrderService) ListByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := uow.CustomerRepository().Get(ctx, customerID); err != nil {
		return nil, err
	}
	return uow.OrderRepository().GetAllByCustomer(ctx, customerID)
}

// ListByCustomerAndStatus retrieves one customer's orders in the given
// status, newest first. The customer must exist.
func (s *OrderService) ListByCustomerAndStatus(
	ctx context.Context,
	customerID kernel.ID,
	status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := uow.CustomerRepository().Get(ctx, customerID); err != nil {
		return nil, err
	}
	return uow.OrderRepository().GetAllByCustomerAndStatus(ctx, customerID, status)
}

// ListByCustomerAndPeriod retrieves one customer's orders created within
// [from, to], newest first. The customer must exist.
func (s *OrderService) ListByCustomerAndPeriod(
	ctx context.Context,
	customerID kernel.ID,
	from, to time.Time,
) ([]*order.Order, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := uow.CustomerRepository().Get(ctx, customerID); err != nil {
		return nil, err
	}
	return uow.OrderRepository().GetAllByCustomerAndPeriod(ctx, customerID, from, to)
}

// ListByStatus retrieves the orders currently in the given status, newest
// first.
func (s *OrderService) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().GetAllByStatus(ctx, status)
}

// ListByPeriod retrieves the orders created within [from, to], newest first.
func (s *OrderService) ListByPeriod(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().GetAllByPeriod(ctx, from, to)
}

// CountByStatus counts the orders currently in the given status.
func (s *OrderService) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().CountByStatus(ctx, status)
}

// TotalRevenue sums the value of confirmed and delivered orders created
// within [from, to]. Periods with no qualifying orders yield zero.
func (s *OrderService) TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if err := validatePeriod(from, to); err != nil {
		return decimal.Zero, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return decimal.Zero, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().TotalRevenue(ctx, from, to)
}

// ChangeStatus transitions the order to the target status. Illegal
// transitions are rejected by the state machine and leave the order
// unchanged.
func (s *OrderService) ChangeStatus(ctx context.Context, id kernel.ID, target order.Status) (*order.Order, error) {
	return s.transition(ctx, id, func(o *order.Order) error {
		return o.ChangeStatus(target)
	})
}

// Confirm transitions the order from PENDING to CONFIRMED.
func (s *OrderService) Confirm(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Confirm)
}

// StartPreparation transitions the order from CONFIRMED to IN_PREPARATION.
func (s *OrderService) StartPreparation(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).StartPreparation)
}

// LeaveForDelivery transitions the order from IN_PREPARATION to
// OUT_FOR_DELIVERY.
func (s *OrderService) LeaveForDelivery(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).LeaveForDelivery)
}

// Deliver transitions the order from OUT_FOR_DELIVERY to DELIVERED.
func (s *OrderService) Deliver(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Deliver)
}

// Cancel transitions the order to CANCELED from any non-terminal status.
func (s *OrderService) Cancel(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Cancel)
}

// Delete removes the order permanently.
func (s *OrderService) Delete(ctx context.Context, id kernel.ID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.OrderRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (s *OrderService) transition(
	ctx context.Context,
	id kernel.ID,
	change func(*order.Order) error,
) (*order.Order, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = change(o); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func validatePeriod(from, to time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("period start")
	}
	if to.IsZero() {
		return errs.NewValueIsRequiredError("period end")
	}
	if from.After(to) {
		return errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("start %s is after end %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}
	return nil
}
