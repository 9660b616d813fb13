package dto

import "agency_admin/internal/models"

type DashboardResponse struct {
	OrderCounts    OrderCounts             `json:"order_counts"`
	RecentOrders   []models.Order          `json:"recent_orders"`
	RecentMessages []models.ContactMessage `json:"recent_messages"`
	PortfolioItems []models.PortfolioItem  `json:"portfolio_items"`
}

type NotificationsResponse struct {
	PendingOrders int64 `json:"pending_orders"`
}
