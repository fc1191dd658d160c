package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"deliveryapi/internal/core/application/services"
	"deliveryapi/internal/core/domain/model/kernel"
)

// CreateProduct handles POST /api/products.
//
//	@Summary	Register a new product under an active restaurant
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		CreateProductRequest	true	"Product to register"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.NewID(req.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	p, err := s.products.Create(ctx.Request().Context(), req.Name, req.Category, restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductResponse(p))
}

// ListProducts handles GET /api/products.
//
//	@Summary	List all products by name
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.products.List(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// GetProduct handles GET /api/products/:id.
//
//	@Summary	Get a product by identifier
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product identifier"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	p, err := s.products.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(p))
}

// UpdateProduct handles PUT /api/products/:id.
//
//	@Summary	Update a product's name or category
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product identifier"
//	@Param		product	body		UpdateProductRequest	true	"Fields to update"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	p, err := s.products.Update(ctx.Request().Context(), id, services.ProductPatch{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(p))
}

// DeleteProduct handles DELETE /api/products/:id.
//
//	@Summary	Delete a product
//	@Tags		products
//	@Param		id	path	int	true	"Product identifier"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.products.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductAvailability handles GET /api/products/:id/availability.
//
//	@Summary	Check whether a product can be ordered
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product identifier"
//	@Success	200	{object}	AvailabilityResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id}/availability [get]
func (s *Server) GetProductAvailability(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	available, err := s.products.GetAvailability(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AvailabilityResponse{Available: available})
}

// MakeProductAvailable handles POST /api/products/:id/make-available.
//
//	@Summary	Return a product to the orderable menu
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product identifier"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/products/{id}/make-available [post]
func (s *Server) MakeProductAvailable(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	p, err := s.products.MakeAvailable(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(p))
}

// MakeProductUnavailable handles POST /api/products/:id/make-unavailable.
//
//	@Summary	Remove a product from the orderable menu
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product identifier"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/products/{id}/make-unavailable [post]
func (s *Server) MakeProductUnavailable(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	p, err := s.products.MakeUnavailable(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(p))
}
