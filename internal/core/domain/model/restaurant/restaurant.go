// Package restaurant provides the Restaurant aggregate root. Restaurants own
// products and must be active for a product to be registered under them.
package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through the NewRestaurant or RestoreRestaurant factory functions.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

const (
	minNameLength     = 3
	maxNameLength     = 100
	minCategoryLength = 3
	maxCategoryLength = 50

	// MinRating and MaxRating bound the restaurant rating, inclusive.
	MinRating = 0.0
	MaxRating = 5.0
)

// Restaurant represents a registered restaurant. The name is unique across
// all restaurants; uniqueness is enforced by the service layer against the
// store. Restaurants are created active.
type Restaurant struct {
	id       kernel.ID
	name     string
	category string
	rating   float64
	active   bool

	guard guard.ConstructorGuard
}

// NewRestaurant creates an active Restaurant with validated name, category,
// and rating. The identifier is assigned later by the store.
func NewRestaurant(name, category string, rating float64) (*Restaurant, error) {
	r := &Restaurant{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setCategory(category),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence.
func RestoreRestaurant(id kernel.ID, name, category string, rating float64, active bool) (*Restaurant, error) {
	r, err := NewRestaurant(name, category, rating)
	if err != nil {
		return nil, err
	}
	if err := r.AssignID(id); err != nil {
		return nil, err
	}

	r.active = active
	return r, nil
}

// Validate ensures the Restaurant was properly constructed through a factory function.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their store-assigned identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's store-assigned identifier.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the restaurant's unique name.
func (r *Restaurant) Name() string {
	return r.name
}

// Category returns the restaurant's cuisine category.
func (r *Restaurant) Category() string {
	return r.category
}

// Rating returns the restaurant's rating in [0.0, 5.0].
func (r *Restaurant) Rating() float64 {
	return r.rating
}

// IsActive reports whether the restaurant may register products.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// AssignID sets the store-assigned identifier exactly once.
func (r *Restaurant) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if r.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("restaurant %s already has an identifier", r.id))
	}

	r.id = id
	return nil
}

// Rename changes the restaurant's name after validation.
// Uniqueness against other restaurants is the service layer's concern.
func (r *Restaurant) Rename(name string) error {
	return r.setName(name)
}

// ChangeCategory changes the restaurant's category after validation.
func (r *Restaurant) ChangeCategory(category string) error {
	return r.setCategory(category)
}

// Rate changes the restaurant's rating after bounds validation.
func (r *Restaurant) Rate(rating float64) error {
	return r.setRating(rating)
}

// Activate marks the restaurant active. Rejected if already active.
func (r *Restaurant) Activate() error {
	if r.active {
		return errs.NewBusinessRuleViolatedError("restaurant is already active")
	}
	r.active = true
	return nil
}

// Deactivate marks the restaurant inactive. Rejected if already inactive.
// Existing products are not retroactively affected.
func (r *Restaurant) Deactivate() error {
	if !r.active {
		return errs.NewBusinessRuleViolatedError("restaurant is already inactive")
	}
	r.active = false
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("restaurant name length", n, minNameLength, maxNameLength)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("restaurant category")
	}
	if n := utf8.RuneCountInString(category); n < minCategoryLength || n > maxCategoryLength {
		return errs.NewValueIsOutOfRangeError(
			"restaurant category length", n, minCategoryLength, maxCategoryLength)
	}
	r.category = category
	return nil
}

func (r *Restaurant) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
