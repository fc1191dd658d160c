package customerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer and assigns the store-generated identifier to the
// aggregate.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
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

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "email", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by identifier.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByEmail retrieves the active customer registered under the email.
// Inactive customers are indistinguishable from absent ones here.
func (r *GormCustomerRepository) GetActiveByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "email = ? AND active = ?", email, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByEmail reports whether any customer holds the email.
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves all customers ordered by name ascending.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves the active customers ordered by name ascending.
func (r *GormCustomerRepository) GetAllActive(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []CustomerDTO) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// CountActive returns the number of active customers.
func (r *GormCustomerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// HasOrders reports whether any order references the customer.
func (r *GormCustomerRepository) HasOrders(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("customer_id = ?", id.Value()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the customer permanently.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id.String())
	}

	return nil
}
