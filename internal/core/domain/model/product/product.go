// Package product provides the Product aggregate root. A product belongs to
// exactly one restaurant; the restaurant must be active at registration time,
// but later restaurant deactivation does not affect existing products.
package product

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

const (
	minNameLength     = 3
	maxNameLength     = 100
	minCategoryLength = 3
	maxCategoryLength = 50
)

// Product represents an item on a restaurant's menu. The restaurant
// reference is immutable after creation; availability is a soft flag toggled
// independently of the owning restaurant's state.
type Product struct {
	id           kernel.ID
	name         string
	category     string
	available    bool
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewProduct creates an available Product under the given restaurant with
// validated name and category. The restaurant identifier must reference a
// persisted restaurant; the active check is the service layer's concern.
func NewProduct(name, category string, restaurantID kernel.ID) (*Product, error) {
	p := &Product{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setCategory(category),
		p.setRestaurantID(restaurantID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.ID, name, category string, available bool, restaurantID kernel.ID) (*Product, error) {
	p, err := NewProduct(name, category, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := p.AssignID(id); err != nil {
		return nil, err
	}

	p.available = available
	return p, nil
}

// Validate ensures the Product was properly constructed through a factory function.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their store-assigned identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's store-assigned identifier.
func (p *Product) ID() kernel.ID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the product's category.
func (p *Product) Category() string {
	return p.category
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// RestaurantID returns the identifier of the owning restaurant.
func (p *Product) RestaurantID() kernel.ID {
	return p.restaurantID
}

// AssignID sets the store-assigned identifier exactly once.
func (p *Product) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if p.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("product %s already has an identifier", p.id))
	}

	p.id = id
	return nil
}

// Rename changes the product's name after validation.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangeCategory changes the product's category after validation.
func (p *Product) ChangeCategory(category string) error {
	return p.setCategory(category)
}

// MakeAvailable marks the product available. Rejected if already available.
func (p *Product) MakeAvailable() error {
	if p.available {
		return errs.NewBusinessRuleViolatedError("product is already available")
	}
	p.available = true
	return nil
}

// MakeUnavailable marks the product unavailable. Rejected if already unavailable.
func (p *Product) MakeUnavailable() error {
	if !p.available {
		return errs.NewBusinessRuleViolatedError("product is already unavailable")
	}
	p.available = false
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("product name length", n, minNameLength, maxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("product category")
	}
	if n := utf8.RuneCountInString(category); n < minCategoryLength || n > maxCategoryLength {
		return errs.NewValueIsOutOfRangeError(
			"product category length", n, minCategoryLength, maxCategoryLength)
	}
	p.category = category
	return nil
}

func (p *Product) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	p.restaurantID = restaurantID
	return nil
}
