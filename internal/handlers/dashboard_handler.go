package handlers

import (
	"net/http"

	"agency_admin/internal/services"
	"agency_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 5

type DashboardHandler struct {
	*BaseHandler
	orderService     services.OrderService
	contactService   services.ContactService
	portfolioService services.PortfolioService
}

func NewDashboardHandler(
	base *BaseHandler,
	orderService services.OrderService,
	contactService services.ContactService,
	portfolioService services.PortfolioService,
) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		orderService:     orderService,
		contactService:   contactService,
		portfolioService: portfolioService,
	}
}

// Overview aggregates order counts, recent activity and the catalog
// into one payload for the admin landing page.
func (h *DashboardHandler) Overview(c *gin.Context) {
	db := h.GetDB(c)
	limit := ParseQueryInt(c, "limit", defaultRecentLimit)

	counts, err := h.orderService.Counts(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	recentOrders, err := h.orderService.Recent(db, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	recentMessages, err := h.contactService.Recent(db, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items, err := h.portfolioService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		OrderCounts:    *counts,
		RecentOrders:   recentOrders,
		RecentMessages: recentMessages,
		PortfolioItems: items,
	})
}
