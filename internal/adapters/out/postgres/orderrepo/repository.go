package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and assigns the store-generated identifier to the
// aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. Only the status can
// legally change after creation, but the full row is written for simplicity.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("customer_id", "status", "total_value", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all orders grouped by status, newest first within each
// status.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("status ASC").
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCustomer retrieves one customer's orders, newest first.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Value()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCustomerAndStatus retrieves one customer's orders in the given
// status, newest first.
func (r *GormOrderRepository) GetAllByCustomerAndStatus(
	ctx context.Context,
	customerID kernel.ID,
	status order.Status,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID.Value(), int(status)).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCustomerAndPeriod retrieves one customer's orders created within
// [from, to], newest first.
func (r *GormOrderRepository) GetAllByCustomerAndPeriod(
	ctx context.Context,
	customerID kernel.ID,
	from, to time.Time,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Value()).
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByStatus retrieves orders in the given status, newest first.
func (r *GormOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(status)).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByPeriod retrieves orders created within [from, to], newest first.
func (r *GormOrderRepository) GetAllByPeriod(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByStatus counts the orders in the given status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ?", int(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// TotalRevenue sums the total value of confirmed and delivered orders created
// within [from, to]. COALESCE keeps empty periods at zero instead of NULL.
func (r *GormOrderRepository) TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(SUM(total_value), 0)").
		Where("status IN ?", []int{int(order.Confirmed), int(order.Delivered)}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// Delete removes the order permanently.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
