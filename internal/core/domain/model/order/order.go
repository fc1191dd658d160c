package order

import (
	"errors"
	"fmt"
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer's order in the system. It is the aggregate root
// that manages the order lifecycle from creation through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must reference exactly one customer by identifier
//   - Total value must lie within the accepted monetary range
//   - Status is always one of the six defined values and transitions follow
//     the table documented on Status
//   - Creation time is stamped once and never changes
//   - Can only be created through NewOrder or RestoreOrder
//
// The identifier is assigned by the store on first persistence via AssignID.
type Order struct {
	id         kernel.ID
	customerID kernel.ID
	status     Status
	totalValue kernel.Money
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order for the given customer with validation.
// The order starts in Pending status with the creation time stamped at call
// time; the identifier is assigned later by the store.
func NewOrder(customerID kernel.ID, totalValue kernel.Money) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setTotalValue(totalValue),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields, including
// the store-assigned identifier and the persisted status, are validated.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	status Status,
	totalValue kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.AssignID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setTotalValue(totalValue),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's store-assigned identifier.
// The zero ID marks an order that has not been persisted yet.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the identifier of the customer that placed the order.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalValue returns the order's total monetary value.
func (o *Order) TotalValue() kernel.Money {
	return o.totalValue
}

// CreatedAt returns the creation timestamp. Immutable after creation.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID sets the store-assigned identifier. It fails if the identifier is
// invalid or the order already has one; the store assigns identifiers exactly
// once.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order %s already has an identifier", o.id))
	}

	o.id = id
	return nil
}

// ChangeStatus transitions the order to the target status.
//
// The transition must be legal per the table documented on Status: the target
// must differ from the current status, the current status must not be
// terminal, and the edge must exist in the table. On rejection the order's
// status is left unchanged and the error names the allowed targets.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Confirm transitions the order from PENDING to CONFIRMED.
func (o *Order) Confirm() error {
	return o.ChangeStatus(Confirmed)
}

// StartPreparation transitions the order from CONFIRMED to IN_PREPARATION.
func (o *Order) StartPreparation() error {
	return o.ChangeStatus(InPreparation)
}

// LeaveForDelivery transitions the order from IN_PREPARATION to OUT_FOR_DELIVERY.
func (o *Order) LeaveForDelivery() error {
	return o.ChangeStatus(OutForDelivery)
}

// Deliver transitions the order from OUT_FOR_DELIVERY to DELIVERED,
// the terminal success state.
func (o *Order) Deliver() error {
	return o.ChangeStatus(Delivered)
}

// Cancel transitions the order to CANCELED. Legal from every non-terminal
// status.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Canceled)
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalValue(totalValue kernel.Money) error {
	if err := totalValue.Validate(); err != nil {
		return err
	}
	o.totalValue = totalValue
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
