package http

import (
	"time"

	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/core/domain/model/product"
	"deliveryapi/internal/core/domain/model/restaurant"
)

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateCustomerRequest carries the optional fields of a customer update.
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// CustomerResponse is the wire representation of a customer.
type CustomerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:     c.ID().Value(),
		Name:   c.Name(),
		Email:  c.Email(),
		Active: c.IsActive(),
	}
}

func toCustomerResponses(customers []*customer.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toCustomerResponse(c)
	}
	return responses
}

// CountResponse carries a single counter value.
type CountResponse struct {
	Count int64 `json:"count"`
}

// CreateRestaurantRequest is the payload for registering a restaurant.
type CreateRestaurantRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// UpdateRestaurantRequest carries the optional fields of a restaurant update.
type UpdateRestaurantRequest struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

// RateRestaurantRequest is the payload for replacing a restaurant's rating.
type RateRestaurantRequest struct {
	Rating float64 `json:"rating"`
}

// RestaurantResponse is the wire representation of a restaurant.
type RestaurantResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Active   bool    `json:"active"`
}

func toRestaurantResponse(r *restaurant.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:       r.ID().Value(),
		Name:     r.Name(),
		Category: r.Category(),
		Rating:   r.Rating(),
		Active:   r.IsActive(),
	}
}

func toRestaurantResponses(restaurants []*restaurant.Restaurant) []RestaurantResponse {
	responses := make([]RestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		responses[i] = toRestaurantResponse(r)
	}
	return responses
}

// CreateProductRequest is the payload for registering a product.
type CreateProductRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	RestaurantID int64  `json:"restaurantId"`
}

// UpdateProductRequest carries the optional fields of a product update.
type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ProductResponse is the wire representation of a product.
type ProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Available    bool   `json:"available"`
	RestaurantID int64  `json:"restaurantId"`
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID().Value(),
		Name:         p.Name(),
		Category:     p.Category(),
		Available:    p.IsAvailable(),
		RestaurantID: p.RestaurantID().Value(),
	}
}

func toProductResponses(products []*product.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses
}

// AvailabilityResponse carries a product's availability flag.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// RestaurantStatusResponse carries only a restaurant's active flag.
type RestaurantStatusResponse struct {
	Active bool `json:"active"`
}

// CreateOrderRequest is the payload for placing an order. The optional
// discounts are applied to the total value before the order is created, the
// percentage first.
type CreateOrderRequest struct {
	CustomerID         int64    `json:"customerId"`
	TotalValue         string   `json:"totalValue"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	DiscountAmount     *string  `json:"discountAmount,omitempty"`
}

// ChangeOrderStatusRequest is the payload for an explicit status change.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of an order. The total value is a
// decimal string to avoid floating point drift on the wire.
type OrderResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Status     string    `json:"status"`
	TotalValue string    `json:"totalValue"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID().Value(),
		CustomerID: o.CustomerID().Value(),
		Status:     o.Status().String(),
		TotalValue: o.TotalValue().String(),
		CreatedAt:  o.CreatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}

// OrderStatusResponse carries only an order's lifecycle status.
type OrderStatusResponse struct {
	Status string `json:"status"`
}

// RevenueResponse carries the revenue sum for a period as a decimal string.
type RevenueResponse struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Revenue string    `json:"revenue"`
}
