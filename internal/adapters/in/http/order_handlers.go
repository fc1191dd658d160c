package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/pkg/errs"
)

// CreateOrder handles POST /api/orders.
//
//	@Summary	Place a new order for an active customer
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to place"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.NewID(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	totalValue, err := kernel.NewMoneyFromString(req.TotalValue)
	if err != nil {
		return writeError(ctx, err)
	}

	if req.DiscountPercentage != nil {
		totalValue, err = totalValue.ApplyPercentageDiscount(*req.DiscountPercentage)
		if err != nil {
			return writeError(ctx, err)
		}
	}
	if req.DiscountAmount != nil {
		discount, err := decimal.NewFromString(*req.DiscountAmount)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("discountAmount", err))
		}
		totalValue, err = totalValue.ApplySubtotalDiscount(discount)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	o, err := s.orders.Create(ctx.Request().Context(), customerID, totalValue)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// ListOrders handles GET /api/orders. The status parameter narrows the
// listing to one lifecycle status; from/to narrow it to a creation period.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Param		status	query	string	false	"Lifecycle status filter"
//	@Param		from	query	string	false	"Period start (RFC 3339 or date)"
//	@Param		to		query	string	false	"Period end (RFC 3339 or date)"
//	@Success	200		{array}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return writeError(ctx, err)
		}

		orders, err := s.orders.ListByStatus(reqCtx, status)
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

		orders, err := s.orders.ListByPeriod(reqCtx, from, to)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderResponses(orders))
	}

	orders, err := s.orders.List(reqCtx)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CountOrdersByStatus handles GET /api/orders/count.
//
//	@Summary	Count the orders in one lifecycle status
//	@Tags		orders
//	@Produce	json
//	@Param		status	query		string	true	"Lifecycle status"
//	@Success	200		{object}	CountResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders/count [get]
func (s *Server) CountOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.orders.CountByStatus(ctx.Request().Context(), status)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetRevenue handles GET /api/orders/revenue.
//
//	@Summary	Sum revenue of confirmed and delivered orders in a period
//	@Tags		orders
//	@Produce	json
//	@Param		from	query		string	true	"Period start (RFC 3339 or date)"
//	@Param		to		query		string	true	"Period end (RFC 3339 or date)"
//	@Success	200		{object}	RevenueResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders/revenue [get]
func (s *Server) GetRevenue(ctx echo.Context) error {
	from, to, err := parsePeriod(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	revenue, err := s.orders.TotalRevenue(ctx.Request().Context(), from, to)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RevenueResponse{
		From:    from,
		To:      to,
		Revenue: revenue.StringFixed(2),
	})
}

// GetOrder handles GET /api/orders/:id.
//
//	@Summary	Get an order by identifier
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order identifier"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.orders.Get(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetOrderStatus handles GET /api/orders/:id/status.
//
//	@Summary	Get only an order's lifecycle status
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order identifier"
//	@Success	200	{object}	OrderStatusResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id}/status [get]
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.orders.GetStatus(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{Status: status.String()})
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
//
//	@Summary	Transition an order to an explicit target status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Order identifier"
//	@Param		status	body		ChangeOrderStatusRequest	true	"Target status"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{id}/status [patch]
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.orders.ChangeStatus(ctx.Request().Context(), id, target)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// ConfirmOrder handles POST /api/orders/:id/confirm.
//
//	@Summary	Confirm a pending order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order identifier"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/confirm [post]
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, s.orders.Confirm)
}

// StartOrderPreparation handles POST /api/orders/:id/start-preparation.
//
//	@Summary	Move a confirmed order into preparation
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order identifier"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/start-preparation [post]
func (s *Server) StartOrderPreparation(ctx echo.Context) error {
	return s.transitionOrder(ctx, s.orders.StartPreparation)
}

// LeaveOrderForDelivery handles POST /api/orders/:id/leave-for-delivery.
//
//	@Summary	Send a prepared order out for delivery
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order identifier"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/leave-for-delivery [post]
func (s *Server) LeaveOrderForDelivery(ctx echo.Context) error {
	return s.transitionOrder(ctx, s.orders.LeaveForDelivery)
}

// DeliverOrder handles POST /api/orders/:id/deliver.
//
//	@Summary	Mark an out-for-delivery order as delivered
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order identifier"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/deliver [post]
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, s.orders.Deliver)
}

// CancelOrder handles POST /api/orders/:id/cancel.
//
//	@Summary	Cancel a non-terminal order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order identifier"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, s.orders.Cancel)
}

// DeleteOrder handles DELETE /api/orders/:id.
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Param		id	path	int	true	"Order identifier"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.orders.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderTransition func(ctx context.Context, id kernel.ID) (*order.Order, error)

func (s *Server) transitionOrder(ctx echo.Context, transition orderTransition) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := transition(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}
