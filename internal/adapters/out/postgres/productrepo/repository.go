package productrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/product"
	"deliveryapi/internal/pkg/errs"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product and assigns the store-generated identifier to the
// aggregate.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update saves an existing product to the database. The restaurant reference
// is immutable and therefore never written back.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "category", "available").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by identifier.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all products ordered by name ascending.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByRestaurant retrieves one restaurant's products ordered by name
// ascending.
func (r *GormProductRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Value()).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailableByRestaurant retrieves only the available products of one
// restaurant ordered by name ascending.
func (r *GormProductRepository) GetAllAvailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND available = ?", restaurantID.Value(), true).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllUnavailableByRestaurant retrieves only the unavailable products of
// one restaurant ordered by name ascending.
func (r *GormProductRepository) GetAllUnavailableByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*product.Product, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND available = ?", restaurantID.Value(), false).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailableByRestaurantAndCategory retrieves the available products of
// one restaurant in the given category, ordered by name ascending.
func (r *GormProductRepository) GetAllAvailableByRestaurantAndCategory(
	ctx context.Context,
	restaurantID kernel.ID,
	category string,
) ([]*product.Product, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND category = ? AND available = ?",
			restaurantID.Value(), category, true).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByRestaurantAndAvailability counts one restaurant's products with the
// given availability.
func (r *GormProductRepository) CountByRestaurantAndAvailability(
	ctx context.Context,
	restaurantID kernel.ID,
	available bool,
) (int64, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("restaurant_id = ? AND available = ?", restaurantID.Value(), available).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Delete removes the product permanently.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

func toDomainSlice(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, aggregate)
	}

	return products, nil
}
