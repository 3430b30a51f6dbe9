// Package http exposes the order status use cases over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const defaultOpenOrdersLimit = 100

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangePaymentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangePaymentStatusCommand) (*order.Order, error)
	}
	ChangeShipmentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeShipmentStatusCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*order.Order, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}
	GetOpenOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOpenOrdersQuery) ([]queries.GetOpenOrdersQueryResponse, error)
	}
	GetStatusesHandler interface {
		Handle(query queries.GetStatusesQuery) (*queries.GetStatusesQueryResponse, error)
	}
	ResolveStatusHandler interface {
		Handle(query queries.ResolveStatusQuery) (*queries.ResolveStatusQueryResponse, error)
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateOrder          CreateOrderHandler
	ChangePaymentStatus  ChangePaymentStatusHandler
	ChangeShipmentStatus ChangeShipmentStatusHandler
	CancelOrder          CancelOrderHandler
	CreateShipment       CreateShipmentHandler

	GetOrder      GetOrderHandler
	GetOpenOrders GetOpenOrdersHandler
	GetStatuses   GetStatusesHandler
	ResolveStatus ResolveStatusHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	metrics  http.Handler
	logger   *slog.Logger
}

// NewServer creates the API server. metrics may be nil, in which case /metrics is not registered.
func NewServer(handlers Handlers, metrics http.Handler, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics))
	}

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOpenOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/payment-status", s.ChangePaymentStatus)
	api.PUT("/orders/:id/shipment-status", s.ChangeShipmentStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/shipments", s.CreateShipment)

	api.GET("/statuses", s.GetStatuses)
	api.GET("/statuses/resolve", s.ResolveStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "healthy")
}

// CreateOrder handles POST /api/v1/orders. The id is generated when the body omits it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.ID != "" {
		id, err := kernel.UUIDFromString(body.ID)
		if err != nil {
			return badRequest(ctx, "Invalid order id")
		}
		orderID = id
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, body.NoShippingRequired)
	if err != nil {
		return s.fail(ctx, "create order", err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "create order", err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// GetOpenOrders handles GET /api/v1/orders?limit=N.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	limit := defaultOpenOrdersLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = n
	}

	query, err := queries.NewGetOpenOrdersQuery(limit)
	if err != nil {
		return s.fail(ctx, "list open orders", err)
	}

	rows, err := s.handlers.GetOpenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "list open orders", err)
	}

	response := make([]OpenOrder, len(rows))
	for i, row := range rows {
		response[i] = OpenOrder{
			ID:             row.ID.String(),
			PaymentStatus:  toStatus(row.PaymentStatus),
			ShipmentStatus: toStatus(row.ShipmentStatus),
			Status:         toStatus(row.Status),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, "get order", err)
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get order", err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// ChangePaymentStatus handles PUT /api/v1/orders/:id/payment-status.
func (s *Server) ChangePaymentStatus(ctx echo.Context) error {
	orderID, body, problem := bindStatusChange(ctx)
	if problem != "" {
		return badRequest(ctx, problem)
	}

	cmd, err := commands.NewChangePaymentStatusCommand(orderID, body.Code)
	if err != nil {
		return s.fail(ctx, "change payment status", err)
	}

	o, err := s.handlers.ChangePaymentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "change payment status", err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// ChangeShipmentStatus handles PUT /api/v1/orders/:id/shipment-status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	orderID, body, problem := bindStatusChange(ctx)
	if problem != "" {
		return badRequest(ctx, problem)
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(orderID, body.Code)
	if err != nil {
		return s.fail(ctx, "change shipment status", err)
	}

	o, err := s.handlers.ChangeShipmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "change shipment status", err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, "cancel order", err)
	}

	o, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "cancel order", err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CreateShipment handles POST /api/v1/orders/:id/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewShipment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(orderID, body.Carrier, body.TrackingNumber, body.ItemCount)
	if err != nil {
		return s.fail(ctx, "create shipment", err)
	}

	o, err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "create shipment", err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// GetStatuses handles GET /api/v1/statuses.
func (s *Server) GetStatuses(ctx echo.Context) error {
	response, err := s.handlers.GetStatuses.Handle(queries.NewGetStatusesQuery())
	if err != nil {
		return s.fail(ctx, "get statuses", err)
	}

	return ctx.JSON(http.StatusOK, toStatuses(response))
}

// ResolveStatus handles GET /api/v1/statuses/resolve?payment=P&shipment=S.
func (s *Server) ResolveStatus(ctx echo.Context) error {
	query, err := queries.NewResolveStatusQuery(ctx.QueryParam("payment"), ctx.QueryParam("shipment"))
	if err != nil {
		return s.fail(ctx, "resolve status", err)
	}

	resolution, err := s.handlers.ResolveStatus.Handle(query)
	if err != nil {
		return s.fail(ctx, "resolve status", err)
	}

	return ctx.JSON(http.StatusOK, Resolution{
		Payment:  toStatus(resolution.Payment),
		Shipment: toStatus(resolution.Shipment),
		Status:   toStatus(resolution.Status),
		Rule:     resolution.Rule.Key(),
	})
}

// bindStatusChange returns a non-empty problem when the path or body is malformed.
func bindStatusChange(ctx echo.Context) (kernel.UUID, StatusChange, string) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, StatusChange{}, "Invalid order id"
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return kernel.UUID{}, StatusChange{}, "Invalid request body"
	}

	return orderID, body, ""
}
