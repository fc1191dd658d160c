package ports

import (
	"context"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate and assigns its store identifier.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// GetAll retrieves all products ordered by name ascending.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetAllByRestaurant retrieves the products of one restaurant ordered by
	// name ascending.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error)

	// GetAllAvailableByRestaurant retrieves only the available products of
	// one restaurant ordered by name ascending.
	GetAllAvailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error)

	// GetAllUnavailableByRestaurant retrieves only the unavailable products
	// of one restaurant ordered by name ascending.
	GetAllUnavailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error)

	// GetAllAvailableByRestaurantAndCategory retrieves the available products
	// of one restaurant in the given category, ordered by name ascending.
	GetAllAvailableByRestaurantAndCategory(ctx context.Context, restaurantID kernel.ID, category string) ([]*product.Product, error)

	// CountByRestaurantAndAvailability counts one restaurant's products with
	// the given availability.
	CountByRestaurantAndAvailability(ctx context.Context, restaurantID kernel.ID, available bool) (int64, error)

	// Delete removes the product permanently.
	Delete(ctx context.Context, id kernel.ID) error
}
