// Package customer provides the Customer aggregate root. Customers own orders
// and must be active for an order to be created on their behalf.
package customer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory functions.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// emailPattern accepts a non-empty local part of [A-Za-z0-9+_.-] followed by
// a non-empty domain.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)

const (
	minNameLength  = 3
	maxNameLength  = 100
	maxEmailLength = 100
)

// Customer represents a registered customer. Customers are created active;
// deactivation is a soft state that blocks new orders and email lookups
// without destroying the record.
type Customer struct {
	id     kernel.ID
	name   string
	email  string
	active bool

	guard guard.ConstructorGuard
}

// NewCustomer creates an active Customer with validated name and email.
// The identifier is assigned later by the store.
func NewCustomer(name, email string) (*Customer, error) {
	c := &Customer{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence, including the
// store-assigned identifier and the persisted active flag.
func RestoreCustomer(id kernel.ID, name, email string, active bool) (*Customer, error) {
	c, err := NewCustomer(name, email)
	if err != nil {
		return nil, err
	}
	if err := c.AssignID(id); err != nil {
		return nil, err
	}

	c.active = active
	return c, nil
}

// Validate ensures the Customer was properly constructed through a factory function.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their store-assigned identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's store-assigned identifier.
func (c *Customer) ID() kernel.ID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address, unique across all customers.
func (c *Customer) Email() string {
	return c.email
}

// IsActive reports whether the customer may place orders.
func (c *Customer) IsActive() bool {
	return c.active
}

// AssignID sets the store-assigned identifier exactly once.
func (c *Customer) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if c.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("customer %s already has an identifier", c.id))
	}

	c.id = id
	return nil
}

// Rename changes the customer's name after validation.
func (c *Customer) Rename(name string) error {
	return c.setName(name)
}

// ChangeEmail changes the customer's email after format validation.
// Uniqueness against other customers is the service layer's concern.
func (c *Customer) ChangeEmail(email string) error {
	return c.setEmail(email)
}

// Activate marks the customer active. Activating an already-active customer
// is rejected without mutating state.
func (c *Customer) Activate() error {
	if c.active {
		return errs.NewBusinessRuleViolatedError("customer is already active")
	}
	c.active = true
	return nil
}

// Deactivate marks the customer inactive. Deactivating an already-inactive
// customer is rejected without mutating state.
func (c *Customer) Deactivate() error {
	if !c.active {
		return errs.NewBusinessRuleViolatedError("customer is already inactive")
	}
	c.active = false
	return nil
}

func (c *Customer) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	c.email = email
	return nil
}

// ValidateEmail checks the email format and length without touching any
// customer. Exposed for natural-key lookups that validate before querying.
func ValidateEmail(email string) error {
	if isBlank(email) {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("length exceeds %d characters", maxEmailLength))
	}
	return nil
}

func validateName(name string) error {
	if isBlank(name) {
		return errs.NewValueIsRequiredError("customer name")
	}
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("customer name length", n, minNameLength, maxNameLength)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
