// Package http provides the inbound HTTP adapter. It exposes the application
// services as a JSON REST API on echo, translating domain errors to HTTP
// status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"deliveryapi/internal/core/application/services"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and the application services.
type Server struct {
	customers   services.CustomerService
	restaurants services.RestaurantService
	products    services.ProductService
	orders      services.OrderService
}

// NewServer creates a new HTTP server backed by the application services.
func NewServer(
	customers services.CustomerService,
	restaurants services.RestaurantService,
	products services.ProductService,
	orders services.OrderService,
) *Server {
	return &Server{
		customers:   customers,
		restaurants: restaurants,
		products:    products,
		orders:      orders,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	customers := api.Group("/customers")
	customers.POST("", s.CreateCustomer)
	customers.GET("", s.ListCustomers)
	customers.GET("/count", s.CountActiveCustomers)
	customers.GET("/:id", s.GetCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)
	customers.POST("/:id/activate", s.ActivateCustomer)
	customers.POST("/:id/deactivate", s.DeactivateCustomer)
	customers.GET("/:id/orders", s.ListCustomerOrders)

	restaurants := api.Group("/restaurants")
	restaurants.POST("", s.CreateRestaurant)
	restaurants.GET("", s.ListRestaurants)
	restaurants.GET("/count", s.CountRestaurantsByCategory)
	restaurants.GET("/:id", s.GetRestaurant)
	restaurants.GET("/:id/status", s.GetRestaurantStatus)
	restaurants.PUT("/:id", s.UpdateRestaurant)
	restaurants.DELETE("/:id", s.DeleteRestaurant)
	restaurants.PUT("/:id/rating", s.RateRestaurant)
	restaurants.POST("/:id/activate", s.ActivateRestaurant)
	restaurants.POST("/:id/deactivate", s.DeactivateRestaurant)
	restaurants.GET("/:id/products", s.ListRestaurantProducts)
	restaurants.GET("/:id/products/available", s.ListRestaurantAvailableProducts)
	restaurants.GET("/:id/products/unavailable", s.ListRestaurantUnavailableProducts)
	restaurants.GET("/:id/products/count", s.CountRestaurantProducts)

	products := api.Group("/products")
	products.POST("", s.CreateProduct)
	products.GET("", s.ListProducts)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct)
	products.DELETE("/:id", s.DeleteProduct)
	products.GET("/:id/availability", s.GetProductAvailability)
	products.POST("/:id/make-available", s.MakeProductAvailable)
	products.POST("/:id/make-unavailable", s.MakeProductUnavailable)

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/count", s.CountOrdersByStatus)
	orders.GET("/revenue", s.GetRevenue)
	orders.GET("/:id", s.GetOrder)
	orders.DELETE("/:id", s.DeleteOrder)
	orders.GET("/:id/status", s.GetOrderStatus)
	orders.PATCH("/:id/status", s.ChangeOrderStatus)
	orders.POST("/:id/confirm", s.ConfirmOrder)
	orders.POST("/:id/start-preparation", s.StartOrderPreparation)
	orders.POST("/:id/leave-for-delivery", s.LeaveOrderForDelivery)
	orders.POST("/:id/deliver", s.DeliverOrder)
	orders.POST("/:id/cancel", s.CancelOrder)

	e.GET("/health", s.Health)
}

// Health reports service liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps domain errors to HTTP status codes: not found to 404,
// business rule violations to 409, validation failures to 400, anything
// else to 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrBusinessRuleViolated):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathID parses the :id path parameter into a kernel.ID.
func pathID(ctx echo.Context) (kernel.ID, error) {
	return kernel.IDFromString(ctx.Param("id"))
}

// parseTime accepts RFC 3339 timestamps and bare dates for period bounds.
func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// parsePeriod reads the from/to query parameters. Both are required.
func parsePeriod(ctx echo.Context) (time.Time, time.Time, error) {
	from, err := parseTime(ctx.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errs.NewValueIsInvalidErrorWithCause("from", err)
	}

	to, err := parseTime(ctx.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errs.NewValueIsInvalidErrorWithCause("to", err)
	}

	return from, to, nil
}
