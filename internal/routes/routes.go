package routes

import (
	"agency_admin/internal/handlers"
	"agency_admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public endpoints, the staff-only admin API
// and the image file server.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", appHandlers.AuthHandler.Login)
			auth.POST("/logout", middleware.AuthMiddleware(), appHandlers.AuthHandler.Logout)
		}

		// Public surface used by the agency site.
		api.POST("/orders", appHandlers.OrderHandler.Create)
		api.POST("/contacts", appHandlers.ContactHandler.Create)
		api.GET("/portfolio", appHandlers.PortfolioHandler.List)
		api.GET("/portfolio/:id", appHandlers.PortfolioHandler.Get)

		// Staff-only surface behind JWT auth.
		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		{
			admin.GET("/dashboard", appHandlers.DashboardHandler.Overview)
			admin.GET("/notifications", appHandlers.OrderHandler.Notifications)

			admin.GET("/orders", appHandlers.OrderHandler.List)
			admin.GET("/orders/:id", appHandlers.OrderHandler.Get)
			admin.PUT("/orders/:id/status", appHandlers.OrderHandler.UpdateStatus)

			admin.GET("/contacts", appHandlers.ContactHandler.List)

			admin.POST("/portfolio", appHandlers.PortfolioHandler.Create)
			admin.PUT("/portfolio/:id", appHandlers.PortfolioHandler.Update)
			admin.DELETE("/portfolio/:id", appHandlers.PortfolioHandler.Delete)
		}
	}

	ginRouter.GET("/files/portfolio/:filename", appHandlers.FileHandler.ServeImage)
}
