package handlers

import (
	"net/http"

	"agency_admin/internal/services"
	"agency_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

// Create accepts a service order from the public site.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	order, err := h.orderService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List returns orders, optionally filtered by ?status=.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(h.GetDB(c), c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	order, err := h.orderService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Notifications reports the pending-order count polled by the admin UI.
func (h *OrderHandler) Notifications(c *gin.Context) {
	counts, err := h.orderService.Counts(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NotificationsResponse{PendingOrders: counts.Pending})
}
