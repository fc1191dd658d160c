package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"deliveryapi/internal/core/application/services"
	"deliveryapi/internal/core/domain/model/order"
)

// CreateCustomer handles POST /api/customers.
//
//	@Summary	Register a new customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		CreateCustomerRequest	true	"Customer to register"
//	@Success	201			{object}	CustomerResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/customers [post]
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	c, err := s.customers.Create(ctx.Request().Context(), req.Name, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCustomerResponse(c))
}

// ListCustomers handles GET /api/customers. With the email query parameter it
// performs an active-only natural key lookup instead of listing.
//
//	@Summary	List customers or look one up by email
//	@Tags		customers
//	@Produce	json
//	@Param		email	query	string	false	"Email of an active customer"
//	@Param		active	query	string	false	"Set to true to list active customers only"
//	@Success	200		{array}	CustomerResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/customers [get]
func (s *Server) ListCustomers(ctx echo.Context) error {
	if email := ctx.QueryParam("email"); email != "" {
		c, err := s.customers.GetActiveByEmail(ctx.Request().Context(), email)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toCustomerResponse(c))
	}

	if ctx.QueryParam("active") == "true" {
		customers, err := s.customers.ListActive(ctx.Request().Context())
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toCustomerResponses(customers))
	}

	customers, err := s.customers.List(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponses(customers))
}

// CountActiveCustomers handles GET /api/customers/count.
//
//	@Summary	Count active customers
//	@Tags		customers
//	@Produce	json
//	@Success	200	{object}	CountResponse
//	@Router		/customers/count [get]
func (s *Server) CountActiveCustomers(ctx echo.Context) error {
	count, err := s.customers.CountActive(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetCustomer handles GET /api/customers/:id.
//
//	@Summary	Get a customer by identifier
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer identifier"
//	@Success	200	{object}	CustomerResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [get]
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	c, err := s.customers.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(c))
}

// UpdateCustomer handles PUT /api/customers/:id.
//
//	@Summary	Update a customer's name or email
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int						true	"Customer identifier"
//	@Param		customer	body		UpdateCustomerRequest	true	"Fields to update"
//	@Success	200			{object}	CustomerResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/customers/{id} [put]
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	c, err := s.customers.Update(ctx.Request().Context(), id, services.CustomerPatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(c))
}

// DeleteCustomer handles DELETE /api/customers/:id.
//
//	@Summary	Delete a customer without orders
//	@Tags		customers
//	@Param		id	path	int	true	"Customer identifier"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/customers/{id} [delete]
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.customers.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActivateCustomer handles POST /api/customers/:id/activate.
//
//	@Summary	Activate a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer identifier"
//	@Success	200	{object}	CustomerResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/customers/{id}/activate [post]
func (s *Server) ActivateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	c, err := s.customers.Activate(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(c))
}

// DeactivateCustomer handles POST /api/customers/:id/deactivate.
//
//	@Summary	Deactivate a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer identifier"
//	@Success	200	{object}	CustomerResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/customers/{id}/deactivate [post]
func (s *Server) DeactivateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	c, err := s.customers.Deactivate(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(c))
}

// ListCustomerOrders handles GET /api/customers/:id/orders. The status query
// parameter narrows the history to one lifecycle status; from/to narrow it
// to a creation period.
//
//	@Summary	List one customer's orders, newest first
//	@Tags		customers
//	@Produce	json
//	@Param		id		path	int		true	"Customer identifier"
//	@Param		status	query	string	false	"Lifecycle status filter"
//	@Param		from	query	string	false	"Period start (RFC 3339 or date)"
//	@Param		to		query	string	false	"Period end (RFC 3339 or date)"
//	@Success	200		{array}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/customers/{id}/orders [get]
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	reqCtx := ctx.Request().Context()

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return writeError(ctx, err)
		}

		orders, err := s.orders.ListByCustomerAndStatus(reqCtx, id, status)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderResponses(orders))
	}

	if ctx.QueryParam("from") != "" || ctx.QueryParam("to") != "" {
		from, to, err := parsePeriod(ctx)
		if err != nil {
			return writeError(ctx, err)
		}

		orders, err := s.orders.ListByCustomerAndPeriod(reqCtx, id, from, to)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderResponses(orders))
	}

	orders, err := s.orders.ListByCustomer(reqCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}
