// Package restaurantrepo provides data transfer objects and mapping
// functions for restaurant persistence.
package restaurantrepo

import (
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates. The name carries a unique index enforcing the natural key at
// the store level.
type RestaurantDTO struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	Name     string  `gorm:"size:100;not null;uniqueIndex"`
	Category string  `gorm:"size:50;not null;index"`
	Rating   float64 `gorm:"not null"`
	Active   bool    `gorm:"not null"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:       aggregate.ID().Value(),
		Name:     aggregate.Name(),
		Category: aggregate.Category(),
		Rating:   aggregate.Rating(),
		Active:   aggregate.IsActive(),
	}
}

// toDomain converts a database row to a restaurant aggregate using
// RestoreRestaurant so all invariants are re-validated.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Category, dto.Rating, dto.Active)
}
