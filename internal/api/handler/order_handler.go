package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for the order lifecycle.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /orders. The new order is pushed to dashboards as newOrder.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.service.CreateOrder(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Order created successfully", Order: order})
}

// List handles GET /orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}  domain.Order
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Filter handles GET /orders/filter.
//
// @Summary      Search orders
// @Tags         orders
// @Produce      json
// @Param        userId         query  string  false  "Owner user id"
// @Param        status         query  string  false  "Exact status"
// @Param        status_ne      query  string  false  "Excluded status; wins over status"
// @Param        city           query  string  false  "Delivery city"
// @Param        district       query  string  false  "Delivery district"
// @Param        ward           query  string  false  "Delivery ward"
// @Param        paymentMethod  query  string  false  "Payment method"
// @Param        date_from      query  string  false  "YYYY-MM-DD or RFC 3339, inclusive"
// @Param        date_to        query  string  false  "YYYY-MM-DD or RFC 3339, inclusive"
// @Param        keyword        query  string  false  "Order id, recipient, phone or product"
// @Success      200  {array}   domain.Order
// @Failure      400  {object}  errorResponse
// @Router       /orders/filter [get]
func (h *OrderHandler) Filter(c echo.Context) error {
	orders, err := h.service.FilterOrders(c.Request().Context(), ports.FilterOrdersInput{
		UserID:        c.QueryParam("userId"),
		Status:        c.QueryParam("status"),
		StatusNot:     c.QueryParam("status_ne"),
		City:          c.QueryParam("city"),
		District:      c.QueryParam("district"),
		Ward:          c.QueryParam("ward"),
		PaymentMethod: c.QueryParam("paymentMethod"),
		DateFrom:      c.QueryParam("date_from"),
		DateTo:        c.QueryParam("date_to"),
		Keyword:       c.QueryParam("keyword"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Update handles PUT /orders/:id.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.service.UpdateOrder(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order updated successfully", Order: order})
}

// PatchStatus handles PATCH /orders/:id/status.
//
// @Summary      Change an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      patchStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) PatchStatus(c echo.Context) error {
	var req patchStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.ChangeStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order status updated successfully", Order: order})
}

// Confirm handles POST /orders/:id/confirm and the legacy POST /orders/:id.
//
// @Summary      Confirm an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(c echo.Context) error {
	order, err := h.service.ConfirmOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order confirmed successfully", Order: order})
}

// Cancel handles POST /orders/:id/cancel and the legacy DELETE /orders/:id.
//
// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c echo.Context) error {
	order, err := h.service.CancelOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order cancelled successfully", Order: order})
}
