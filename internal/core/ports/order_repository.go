package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by customer,
// status, and creation period.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its store identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves all orders ordered by status ascending, then creation
	// time descending.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves one customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)

	// GetAllByCustomerAndStatus retrieves one customer's orders in the given
	// status, newest first.
	GetAllByCustomerAndStatus(ctx context.Context, customerID kernel.ID, status order.Status) ([]*order.Order, error)

	// GetAllByCustomerAndPeriod retrieves one customer's orders created
	// within [from, to], newest first.
	GetAllByCustomerAndPeriod(ctx context.Context, customerID kernel.ID, from, to time.Time) ([]*order.Order, error)

	// GetAllByStatus retrieves orders in the given status, newest first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllByPeriod retrieves orders created within [from, to], newest first.
	GetAllByPeriod(ctx context.Context, from, to time.Time) ([]*order.Order, error)

	// CountByStatus counts the orders in the given status.
	CountByStatus(ctx context.Context, status order.Status) (int64, error)

	// TotalRevenue sums the total value of confirmed and delivered orders
	// created within [from, to]. Returns zero when no orders match. The sum
	// is unbounded, so it is a plain decimal rather than a Money.
	TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// Delete removes the order permanently.
	Delete(ctx context.Context, id kernel.ID) error
}
