package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService      AuthService
	OrderService     OrderService
	ContactService   ContactService
	PortfolioService PortfolioService
}
