package services

import (
	"context"
	"strings"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/restaurant"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/errs"
)

// RestaurantPatch carries the optional fields of a restaurant update.
// Nil fields are left unchanged.
type RestaurantPatch struct {
	Name     *string
	Category *string
	Rating   *float64
}

// RestaurantService implements the restaurant use cases: registration with a
// unique name, updates and re-rating, soft activation state, and guarded
// deletion.
type RestaurantService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewRestaurantService creates a RestaurantService backed by the given
// UnitOfWork factory.
func NewRestaurantService(uowFactory ports.UnitOfWorkFactory) RestaurantService {
	return RestaurantService{uowFactory: uowFactory}
}

// Create registers a new active restaurant. The name must not be registered
// to any other restaurant.
func (s *RestaurantService) Create(ctx context.Context, name, category string, rating float64) (*restaurant.Restaurant, error) {
	r, err := restaurant.NewRestaurant(name, category, rating)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.RestaurantRepository()
	taken, err := repo.ExistsByName(ctx, r.Name())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBusinessRuleViolatedError("restaurant with this name already exists")
	}

	if err = repo.Add(ctx, r); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// Get retrieves a restaurant by identifier.
func (s *RestaurantService) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.RestaurantRepository().Get(ctx, id)
}

// GetByName retrieves the restaurant registered under the exact name.
func (s *RestaurantService) GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.RestaurantRepository().GetByName(ctx, name)
}

// GetStatus reports whether the restaurant is currently active.
func (s *RestaurantService) GetStatus(ctx context.Context, id kernel.ID) (bool, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return r.IsActive(), nil
}

// List retrieves all restaurants, best rated first, names breaking ties.
func (s *RestaurantService) List(ctx context.Context) ([]*restaurant.Restaurant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.RestaurantRepository().GetAll(ctx)
}

// ListActive retrieves only the active restaurants with the same ordering as
// List.
func (s *RestaurantService) ListActive(ctx context.Context) ([]*restaurant.Restaurant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.RestaurantRepository().GetAllActive(ctx)
}

// ListByCategory retrieves the active restaurants of one category with the
// same ordering as List.
func (s *RestaurantService) ListByCategory(ctx context.Context, category string) ([]*restaurant.Restaurant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.RestaurantRepository().GetAllByCategory(ctx, category)
}

// SearchByName retrieves the restaurants whose name contains the fragment,
// ordered by name. The fragment must not be blank.
func (s *RestaurantService) SearchByName(ctx context.Context, name string) ([]*restaurant.Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.RestaurantRepository().SearchByName(ctx, name)
}

// CountByCategory counts the active restaurants of one category.
func (s *RestaurantService) CountByCategory(ctx context.Context, category string) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.RestaurantRepository().CountByCategory(ctx, category)
}

// Update applies the non-nil fields of the patch to the restaurant. A name
// change is checked for uniqueness against all other restaurants.
func (s *RestaurantService) Update(ctx context.Context, id kernel.ID, patch RestaurantPatch) (*restaurant.Restaurant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.RestaurantRepository()
	r, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != r.Name() {
		taken, err := repo.ExistsByName(ctx, *patch.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBusinessRuleViolatedError("restaurant with this name already exists")
		}
		if err = r.Rename(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Category != nil {
		if err = r.ChangeCategory(*patch.Category); err != nil {
			return nil, err
		}
	}
	if patch.Rating != nil {
		if err = r.Rate(*patch.Rating); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, r); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// Rate replaces the restaurant's rating.
func (s *RestaurantService) Rate(ctx context.Context, id kernel.ID, rating float64) (*restaurant.Restaurant, error) {
	return s.Update(ctx, id, RestaurantPatch{Rating: &rating})
}

// Activate marks the restaurant active. Activating an active restaurant is a
// business rule violation.
func (s *RestaurantService) Activate(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	return s.changeActivation(ctx, id, (*restaurant.Restaurant).Activate)
}

// Deactivate marks the restaurant inactive, blocking new product
// registrations. Existing products keep their own availability.
func (s *RestaurantService) Deactivate(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	return s.changeActivation(ctx, id, (*restaurant.Restaurant).Deactivate)
}

func (s *RestaurantService) changeActivation(
	ctx context.Context,
	id kernel.ID,
	change func(*restaurant.Restaurant) error,
) (*restaurant.Restaurant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.RestaurantRepository()
	r, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = change(r); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, r); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// Delete removes a restaurant permanently. Restaurants that still own
// products cannot be deleted; remove the products first.
func (s *RestaurantService) Delete(ctx context.Context, id kernel.ID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.RestaurantRepository()
	hasProducts, err := repo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return errs.NewBusinessRuleViolatedError("restaurant with products cannot be deleted")
	}

	if err = repo.Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
