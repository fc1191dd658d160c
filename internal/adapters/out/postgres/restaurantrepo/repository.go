package restaurantrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/restaurant"
	"deliveryapi/internal/pkg/errs"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant and assigns the store-generated identifier to
// the aggregate.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err := aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant to the database.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "category", "rating", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by identifier.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves the restaurant registered under the exact name.
func (r *GormRestaurantRepository) GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByName reports whether any restaurant holds the name.
func (r *GormRestaurantRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves all restaurants, best rated first, names breaking ties.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves only the active restaurants with the same ordering
// as GetAll.
func (r *GormRestaurantRepository) GetAllActive(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("rating DESC").
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCategory retrieves the active restaurants of one category with the
// same ordering as GetAll.
func (r *GormRestaurantRepository) GetAllByCategory(ctx context.Context, category string) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Where("category = ? AND active = ?", category, true).
		Order("rating DESC").
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// SearchByName retrieves restaurants whose name contains the given fragment,
// case-insensitively, ordered by name.
func (r *GormRestaurantRepository) SearchByName(ctx context.Context, name string) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByCategory counts the active restaurants of one category.
func (r *GormRestaurantRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("category = ? AND active = ?", category, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// HasProducts reports whether any product references the restaurant.
func (r *GormRestaurantRepository) HasProducts(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Table("products").
		Where("restaurant_id = ?", id.Value()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the restaurant permanently.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RestaurantDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}

	return nil
}

func toDomainSlice(dtos []RestaurantDTO) ([]*restaurant.Restaurant, error) {
	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, aggregate)
	}

	return restaurants, nil
}
