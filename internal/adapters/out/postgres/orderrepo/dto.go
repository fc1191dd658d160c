// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Orders are the busiest table in the system; the
// customer reference, status, and creation time are indexed for the query
// paths the API exposes.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The total value is stored as numeric to keep monetary
// precision intact.
type OrderDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"not null;index"`
	Status     int             `gorm:"not null;index"`
	TotalValue decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Value(),
		CustomerID: aggregate.CustomerID().Value(),
		Status:     int(aggregate.Status()),
		TotalValue: aggregate.TotalValue().Amount(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder
// so the status and total value are re-validated.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	totalValue, err := kernel.NewMoney(dto.TotalValue)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, order.Status(dto.Status), totalValue, dto.CreatedAt)
}
