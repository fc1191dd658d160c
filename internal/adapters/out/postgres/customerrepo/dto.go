// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. It implements the repository pattern for the
// customer aggregate, converting between domain entities and rows.
package customerrepo

import (
	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The email carries a unique index enforcing the natural key at
// the store level.
type CustomerDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:100;not null"`
	Email  string `gorm:"size:100;not null;uniqueIndex"`
	Active bool   `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
// An unassigned identifier maps to zero so the store generates one on insert.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:     aggregate.ID().Value(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
		Active: aggregate.IsActive(),
	}
}

// toDomain converts a database row to a customer aggregate using
// RestoreCustomer so all invariants are re-validated.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Active)
}
