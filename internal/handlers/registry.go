package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	OrderHandler     *OrderHandler
	ContactHandler   *ContactHandler
	PortfolioHandler *PortfolioHandler
	DashboardHandler *DashboardHandler
	FileHandler      *FileHandler
}
