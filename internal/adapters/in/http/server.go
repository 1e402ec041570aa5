// Package http implements the inbound REST API on top of echo.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
	getMenuHandler  queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getMenuHandler:           getMenuHandler,
	}
}

// RegisterRoutes attaches the API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id", s.UpdateOrderStatus)
	e.GET("/menu", s.GetMenu)
	e.GET("/health", s.Health)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Items []string `json:"items"`
}

// CreateOrderResponse is the body returned for a newly placed order.
type CreateOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// UpdateOrderStatusRequest is the body of PATCH /orders/:id.
type UpdateOrderStatusRequest struct {
	NewStatus string `json:"new_status"`
}

// OrderResponse is the full order view returned by reads and updates.
type OrderResponse struct {
	OrderID   int64     `json:"order_id"`
	Items     []string  `json:"items"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuItemResponse is one catalog entry in GET /menu.
type MenuItemResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// CreateOrder handles POST /orders - places a new order.
// Responds 201 with the order's identity; driver confirmation happens
// asynchronously and is never awaited here.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(request.Items)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var unavailable *commands.ItemsUnavailableError
		if errors.As(err, &unavailable) {
			return errorJSON(ctx, http.StatusBadRequest, unavailable.Error())
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: created.ID(),
		Status:  created.Status().String(),
	})
}

// GetOrder handles GET /orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	orderView, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Order not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		OrderID:   orderView.ID,
		Items:     orderView.Items,
		Status:    orderView.Status,
		CreatedAt: orderView.CreatedAt,
	})
}

// UpdateOrderStatus handles PATCH /orders/:id - manual status transitions.
// A partner notification failure yields 502 with the change already committed
// locally.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(request.NewStatus)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+request.NewStatus)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status update: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrPartnerUnreachable):
			return errorJSON(ctx, http.StatusBadGateway,
				"Status updated locally, delivery partner unreachable")
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorJSON(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(err, errs.ErrValueIsInvalid):
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "Failed to update order status")
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		OrderID:   updated.ID(),
		Items:     updated.Items(),
		Status:    updated.Status().String(),
		CreatedAt: updated.CreatedAt(),
	})
}

// GetMenu handles GET /menu - retrieves the full catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve menu")
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Available: item.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func parseOrderID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
