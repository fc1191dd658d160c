package ports

import (
	"context"

	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// Customers carry a unique email natural key; lookups by email are restricted
// to active customers.
type CustomerRepository interface {
	// Add persists a new customer aggregate and assigns its store identifier.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// GetActiveByEmail retrieves the active customer registered under the
	// given email. Inactive customers are not visible through this lookup.
	GetActiveByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// ExistsByEmail reports whether any customer, active or not, is
	// registered under the given email. Used for uniqueness checks.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetAll retrieves all customers ordered by name ascending.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// GetAllActive retrieves the active customers ordered by name ascending.
	GetAllActive(ctx context.Context) ([]*customer.Customer, error)

	// CountActive returns the number of active customers.
	CountActive(ctx context.Context) (int64, error)

	// HasOrders reports whether any order references the customer.
	HasOrders(ctx context.Context, id kernel.ID) (bool, error)

	// Delete removes the customer permanently.
	Delete(ctx context.Context, id kernel.ID) error
}
