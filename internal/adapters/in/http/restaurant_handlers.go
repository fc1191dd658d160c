package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"deliveryapi/internal/core/application/services"
)

// CreateRestaurant handles POST /api/restaurants.
//
//	@Summary	Register a new restaurant
//	@Tags		restaurants
//	@Accept		json
//	@Produce	json
//	@Param		restaurant	body		CreateRestaurantRequest	true	"Restaurant to register"
//	@Success	201			{object}	RestaurantResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/restaurants [post]
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req CreateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	r, err := s.restaurants.Create(ctx.Request().Context(), req.Name, req.Category, req.Rating)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toRestaurantResponse(r))
}

// ListRestaurants handles GET /api/restaurants. The name query parameter
// searches by name fragment; category narrows the listing to the active
// restaurants of one category. Default ordering is rating descending, name
// ascending.
//
//	@Summary	List restaurants, best rated first
//	@Tags		restaurants
//	@Produce	json
//	@Param		name		query	string	false	"Name fragment search, case-insensitive"
//	@Param		category	query	string	false	"Category filter, active restaurants only"
//	@Param		active		query	bool	false	"Restrict to active restaurants"
//	@Success	200			{array}	RestaurantResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/restaurants [get]
func (s *Server) ListRestaurants(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if name := ctx.QueryParam("name"); name != "" {
		list, err := s.restaurants.SearchByName(reqCtx, name)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toRestaurantResponses(list))
	}

	if ctx.QueryParam("active") == "true" {
		list, err := s.restaurants.ListActive(reqCtx)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toRestaurantResponses(list))
	}

	if category := ctx.QueryParam("category"); category != "" {
		list, err := s.restaurants.ListByCategory(reqCtx, category)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toRestaurantResponses(list))
	}

	list, err := s.restaurants.List(reqCtx)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponses(list))
}

// CountRestaurantsByCategory handles GET /api/restaurants/count.
//
//	@Summary	Count the active restaurants of one category
//	@Tags		restaurants
//	@Produce	json
//	@Param		category	query		string	true	"Category"
//	@Success	200			{object}	CountResponse
//	@Router		/restaurants/count [get]
func (s *Server) CountRestaurantsByCategory(ctx echo.Context) error {
	count, err := s.restaurants.CountByCategory(ctx.Request().Context(), ctx.QueryParam("category"))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetRestaurantStatus handles GET /api/restaurants/:id/status.
//
//	@Summary	Check whether a restaurant is active
//	@Tags		restaurants
//	@Produce	json
//	@Param		id	path		int	true	"Restaurant identifier"
//	@Success	200	{object}	RestaurantStatusResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/restaurants/{id}/status [get]
func (s *Server) GetRestaurantStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	active, err := s.restaurants.GetStatus(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantStatusResponse{Active: active})
}

// GetRestaurant handles GET /api/restaurants/:id.
//
//	@Summary	Get a restaurant by identifier
//	@Tags		restaurants
//	@Produce	json
//	@Param		id	path		int	true	"Restaurant identifier"
//	@Success	200	{object}	RestaurantResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/restaurants/{id} [get]
func (s *Server) GetRestaurant(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	r, err := s.restaurants.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponse(r))
}

// UpdateRestaurant handles PUT /api/restaurants/:id.
//
//	@Summary	Update a restaurant's name, category, or rating
//	@Tags		restaurants
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int						true	"Restaurant identifier"
//	@Param		restaurant	body		UpdateRestaurantRequest	true	"Fields to update"
//	@Success	200			{object}	RestaurantResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/restaurants/{id} [put]
func (s *Server) UpdateRestaurant(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	r, err := s.restaurants.Update(ctx.Request().Context(), id, services.RestaurantPatch{
		Name:     req.Name,
		Category: req.Category,
		Rating:   req.Rating,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponse(r))
}

// RateRestaurant handles PUT /api/restaurants/:id/rating.
//
//	@Summary	Replace a restaurant's rating
//	@Tags		restaurants
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Restaurant identifier"
//	@Param		rating	body		RateRestaurantRequest	true	"New rating in [0, 5]"
//	@Success	200		{object}	RestaurantResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/restaurants/{id}/rating [put]
func (s *Server) RateRestaurant(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req RateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	r, err := s.restaurants.Rate(ctx.Request().Context(), id, req.Rating)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponse(r))
}

// DeleteRestaurant handles DELETE /api/restaurants/:id.
//
//	@Summary	Delete a restaurant without products
//	@Tags		restaurants
//	@Param		id	path	int	true	"Restaurant identifier"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/restaurants/{id} [delete]
func (s *Server) DeleteRestaurant(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.restaurants.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActivateRestaurant handles POST /api/restaurants/:id/activate.
//
//	@Summary	Activate a restaurant
//	@Tags		restaurants
//	@Produce	json
//	@Param		id	path		int	true	"Restaurant identifier"
//	@Success	200	{object}	RestaurantResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/restaurants/{id}/activate [post]
func (s *Server) ActivateRestaurant(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	r, err := s.restaurants.Activate(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponse(r))
}

// DeactivateRestaurant handles POST /api/restaurants/:id/deactivate.
//
//	@Summary	Deactivate a restaurant
//	@Tags		restaurants
//	@Produce	json
//	@Param		id	path		int	true	"Restaurant identifier"
//	@Success	200	{object}	RestaurantResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/restaurants/{id}/deactivate [post]
func (s *Server) DeactivateRestaurant(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	r, err := s.restaurants.Deactivate(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponse(r))
}

// ListRestaurantProducts handles GET /api/restaurants/:id/products.
//
//	@Summary	List a restaurant's full menu
//	@Tags		restaurants
//	@Produce	json
//	@Param		id	path	int	true	"Restaurant identifier"
//	@Success	200	{array}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/restaurants/{id}/products [get]
func (s *Server) ListRestaurantProducts(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.products.ListByRestaurant(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// ListRestaurantAvailableProducts handles GET /api/restaurants/:id/products/available.
// The category query parameter narrows the menu to one category.
//
//	@Summary	List a restaurant's orderable products
//	@Tags		restaurants
//	@Produce	json
//	@Param		id			path	int		true	"Restaurant identifier"
//	@Param		category	query	string	false	"Category filter"
//	@Success	200			{array}	ProductResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/restaurants/{id}/products/available [get]
func (s *Server) ListRestaurantAvailableProducts(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	reqCtx := ctx.Request().Context()

	if category := ctx.QueryParam("category"); category != "" {
		products, err := s.products.ListAvailableByRestaurantAndCategory(reqCtx, id, category)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toProductResponses(products))
	}

	products, err := s.products.ListAvailableByRestaurant(reqCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// ListRestaurantUnavailableProducts handles GET /api/restaurants/:id/products/unavailable.
//
//	@Summary	List a restaurant's products that are off the menu
//	@Tags		restaurants
//	@Produce	json
//	@Param		id	path	int	true	"Restaurant identifier"
//	@Success	200	{array}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/restaurants/{id}/products/unavailable [get]
func (s *Server) ListRestaurantUnavailableProducts(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.products.ListUnavailableByRestaurant(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// CountRestaurantProducts handles GET /api/restaurants/:id/products/count.
// The available query parameter selects which side of the menu to count;
// it defaults to the orderable products.
//
//	@Summary	Count a restaurant's products by availability
//	@Tags		restaurants
//	@Produce	json
//	@Param		id			path		int		true	"Restaurant identifier"
//	@Param		available	query		bool	false	"Availability to count (default true)"
//	@Success	200			{object}	CountResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/restaurants/{id}/products/count [get]
func (s *Server) CountRestaurantProducts(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	available := ctx.QueryParam("available") != "false"

	count, err := s.products.CountByRestaurantAvailability(ctx.Request().Context(), id, available)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}
