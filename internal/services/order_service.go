package services

import (
	"agency_admin/internal/models"
	"agency_admin/internal/repositories"
	"agency_admin/internal/services/dto"
	"agency_admin/pkg/apperrors"

	"gorm.io/gorm"
)

type OrderService interface {
	Create(db *gorm.DB, req *dto.CreateOrderRequest) (*models.Order, error)
	List(db *gorm.DB, status string) ([]models.Order, error)
	Get(db *gorm.DB, id uint) (*models.Order, error)
	UpdateStatus(db *gorm.DB, id uint, req *dto.UpdateOrderStatusRequest) (*models.Order, error)
	Counts(db *gorm.DB) (*dto.OrderCounts, error)
	Recent(db *gorm.DB, limit int) ([]models.Order, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) Create(db *gorm.DB, req *dto.CreateOrderRequest) (*models.Order, error) {
	order := &models.Order{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ServiceName:  req.ServiceName,
		Requirements: req.Requirements,
		Status:       models.OrderStatusPending,
	}
	if err := s.orderRepo.Create(db, order); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

func (s *orderService) List(db *gorm.DB, status string) ([]models.Order, error) {
	var filter models.OrderStatus
	if status != "" {
		filter = models.OrderStatus(status)
		if !filter.Valid() {
			return nil, apperrors.NewBadRequestError("unknown order status: " + status)
		}
	}
	orders, err := s.orderRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orders, nil
}

func (s *orderService) Get(db *gorm.DB, id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err, "order", "Order not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

func (s *orderService) UpdateStatus(db *gorm.DB, id uint, req *dto.UpdateOrderStatusRequest) (*models.Order, error) {
	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("unknown order status: " + req.Status)
	}
	if err := s.orderRepo.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err, "order", "Order not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, id)
}

func (s *orderService) Counts(db *gorm.DB) (*dto.OrderCounts, error) {
	counts := &dto.OrderCounts{}
	var err error
	if counts.Pending, err = s.orderRepo.CountByStatus(db, models.OrderStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if counts.InProgress, err = s.orderRepo.CountByStatus(db, models.OrderStatusInProgress); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if counts.Completed, err = s.orderRepo.CountByStatus(db, models.OrderStatusCompleted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return counts, nil
}

func (s *orderService) Recent(db *gorm.DB, limit int) ([]models.Order, error) {
	orders, err := s.orderRepo.FindRecent(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orders, nil
}
