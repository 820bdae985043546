// Package http exposes the order API over HTTP using echo. Handlers bind
// and validate request DTOs, dispatch to command and query handlers, and
// map domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes attaches all order routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

// CreateOrder handles POST /api/v1/orders. The order is stored as PENDING
// and handed to the asynchronous pipeline; 202 acknowledges acceptance,
// not completion.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := request.toItems()
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, CreateOrderResponse{
		OrderID: createdOrder.ID().String(),
		Status:  createdOrder.Status().String(),
		Message: "Order accepted for processing",
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	foundOrder, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(foundOrder))
}

// ListOrders handles GET /api/v1/orders with an optional customerId filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery(ctx.QueryParam("customerId"))

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Succeeds only while
// the order is still PENDING.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cancelledOrder, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(cancelledOrder))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates domain errors to status codes. Anything unrecognized
// becomes a generic 500 so no internal detail leaks.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
