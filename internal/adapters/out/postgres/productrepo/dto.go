// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product
// aggregates. The restaurant reference is indexed for menu queries.
type ProductDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:100;not null"`
	Category     string `gorm:"size:50;not null"`
	Available    bool   `gorm:"not null"`
	RestaurantID int64  `gorm:"not null;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Value(),
		Name:         aggregate.Name(),
		Category:     aggregate.Category(),
		Available:    aggregate.IsAvailable(),
		RestaurantID: aggregate.RestaurantID().Value(),
	}
}

// toDomain converts a database row to a product aggregate using
// RestoreProduct so all invariants are re-validated.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Category, dto.Available, restaurantID)
}
