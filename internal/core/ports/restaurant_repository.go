package ports

import (
	"context"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates. Restaurant names are unique across the store.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate and assigns its store identifier.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)

	// GetByName retrieves the restaurant registered under the exact name.
	GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error)

	// ExistsByName reports whether any restaurant is registered under the
	// given name. Used for uniqueness checks.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// GetAll retrieves all restaurants ordered by rating descending, then
	// name ascending.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)

	// GetAllActive retrieves only the active restaurants with the same
	// ordering as GetAll.
	GetAllActive(ctx context.Context) ([]*restaurant.Restaurant, error)

	// GetAllByCategory retrieves active restaurants in the given category
	// with the same ordering as GetAll.
	GetAllByCategory(ctx context.Context, category string) ([]*restaurant.Restaurant, error)

	// SearchByName retrieves restaurants whose name contains the fragment,
	// case-insensitively, ordered by name ascending.
	SearchByName(ctx context.Context, name string) ([]*restaurant.Restaurant, error)

	// CountByCategory counts the active restaurants of one category.
	CountByCategory(ctx context.Context, category string) (int64, error)

	// HasProducts reports whether any product references the restaurant.
	HasProducts(ctx context.Context, id kernel.ID) (bool, error)

	// Delete removes the restaurant permanently.
	Delete(ctx context.Context, id kernel.ID) error
}
