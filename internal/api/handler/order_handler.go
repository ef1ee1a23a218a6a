package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"     validate:"required"`
	Price     float64 `json:"price"    validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
}

type createOrderRequest struct {
	CustomerName string             `json:"customerName" validate:"required"`
	Email        string             `json:"email"        validate:"required,email"`
	Phone        string             `json:"phone"        validate:"required"`
	Address      string             `json:"address"      validate:"required"`
	Items        []orderItemRequest `json:"items"        validate:"required,min=1,dive"`
	Total        float64            `json:"total"        validate:"required,gte=0"`
}

type createOrderResponse struct {
	ID    string        `json:"id"`
	Order *domain.Order `json:"order"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create places an order. Public, no account required.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	order, err := h.orderService.Create(c.Request().Context(), ports.CreateOrderInput{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        items,
		Total:        req.Total,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createOrderResponse{ID: order.ID, Order: order})
}

// List returns all orders, newest first. Admin only.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns a single order. Admin only.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orderService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateStatus moves an order through its lifecycle. Admin only.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
