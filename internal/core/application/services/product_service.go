package services

import (
	"context"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/product"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/errs"
)

// ProductPatch carries the optional fields of a product update.
// Nil fields are left unchanged; the owning restaurant never changes.
type ProductPatch struct {
	Name     *string
	Category *string
}

// ProductService implements the product use cases: registration under an
// active restaurant, updates, and availability toggling.
type ProductService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewProductService creates a ProductService backed by the given UnitOfWork
// factory.
func NewProductService(uowFactory ports.UnitOfWorkFactory) ProductService {
	return ProductService{uowFactory: uowFactory}
}

// Create registers a new available product under the given restaurant.
// The restaurant must exist and be active at registration time.
func (s *ProductService) Create(ctx context.Context, name, category string, restaurantID kernel.ID) (*product.Product, error) {
	p, err := product.NewProduct(name, category, restaurantID)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	r, err := uow.RestaurantRepository().Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !r.IsActive() {
		return nil, errs.NewBusinessRuleViolatedError("cannot add products to an inactive restaurant")
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// Get retrieves a product by identifier.
func (s *ProductService) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.ProductRepository().Get(ctx, id)
}

// GetAvailability reports whether the product can currently be ordered.
func (s *ProductService) GetAvailability(ctx context.Context, id kernel.ID) (bool, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return p.IsAvailable(), nil
}

// List retrieves all products ordered by name.
func (s *ProductService) List(ctx context.Context) ([]*product.Product, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.ProductRepository().GetAll(ctx)
}

// ListByRestaurant retrieves one restaurant's products ordered by name.
// The restaurant must exist; an unknown restaurant is reported as not found
// rather than as an empty menu.
func (s *ProductService) ListByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	return s.listForRestaurant(ctx, restaurantID, func(repo ports.ProductRepository) ([]*product.Product, error) {
		return repo.GetAllByRestaurant(ctx, restaurantID)
	})
}

// ListAvailableByRestaurant retrieves only the orderable products of one
// restaurant ordered by name.
func (s *ProductService) ListAvailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	return s.listForRestaurant(ctx, restaurantID, func(repo ports.ProductRepository) ([]*product.Product, error) {
		return repo.GetAllAvailableByRestaurant(ctx, restaurantID)
	})
}

// ListUnavailableByRestaurant retrieves the products of one restaurant that
// are currently off the orderable menu.
func (s *ProductService) ListUnavailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	return s.listForRestaurant(ctx, restaurantID, func(repo ports.ProductRepository) ([]*product.Product, error) {
		return repo.GetAllUnavailableByRestaurant(ctx, restaurantID)
	})
}

// ListAvailableByRestaurantAndCategory retrieves the orderable products of
// one restaurant in the given category.
func (s *ProductService) ListAvailableByRestaurantAndCategory(
	ctx context.Context,
	restaurantID kernel.ID,
	category string,
) ([]*product.Product, error) {
	return s.listForRestaurant(ctx, restaurantID, func(repo ports.ProductRepository) ([]*product.Product, error) {
		return repo.GetAllAvailableByRestaurantAndCategory(ctx, restaurantID, category)
	})
}

// listForRestaurant verifies the restaurant exists before running the fetch,
// so an unknown restaurant surfaces as not found instead of an empty list.
func (s *ProductService) listForRestaurant(
	ctx context.Context,
	restaurantID kernel.ID,
	fetch func(ports.ProductRepository) ([]*product.Product, error),
) ([]*product.Product, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := uow.RestaurantRepository().Get(ctx, restaurantID); err != nil {
		return nil, err
	}

	return fetch(uow.ProductRepository())
}

// CountByRestaurantAvailability counts one restaurant's products with the
// given availability. The restaurant must exist.
func (s *ProductService) CountByRestaurantAvailability(
	ctx context.Context,
	restaurantID kernel.ID,
	available bool,
) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := uow.RestaurantRepository().Get(ctx, restaurantID); err != nil {
		return 0, err
	}

	return uow.ProductRepository().CountByRestaurantAndAvailability(ctx, restaurantID, available)
}

// Update applies the non-nil fields of the patch to the product.
func (s *ProductService) Update(ctx context.Context, id kernel.ID, patch ProductPatch) (*product.Product, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err = p.Rename(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Category != nil {
		if err = p.ChangeCategory(*patch.Category); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// MakeAvailable marks the product orderable. Marking an available product is
// a business rule violation.
func (s *ProductService) MakeAvailable(ctx context.Context, id kernel.ID) (*product.Product, error) {
	return s.changeAvailability(ctx, id, (*product.Product).MakeAvailable)
}

// MakeUnavailable removes the product from the orderable menu without
// deleting it.
func (s *ProductService) MakeUnavailable(ctx context.Context, id kernel.ID) (*product.Product, error) {
	return s.changeAvailability(ctx, id, (*product.Product).MakeUnavailable)
}

func (s *ProductService) changeAvailability(
	ctx context.Context,
	id kernel.ID,
	change func(*product.Product) error,
) (*product.Product, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = change(p); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete removes a product permanently. Orders never reference products
// directly, so deletion needs no referential guard.
func (s *ProductService) Delete(ctx context.Context, id kernel.ID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
