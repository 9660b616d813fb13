package repositories

import (
	"errors"

	"gorm.io/gorm"

	"agency_admin/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(db *gorm.DB, order *models.Order) error
	FindByID(db *gorm.DB, id uint) (*models.Order, error)
	FindAll(db *gorm.DB, status models.OrderStatus) ([]models.Order, error)
	FindRecent(db *gorm.DB, limit int) ([]models.Order, error)
	UpdateStatus(db *gorm.DB, id uint, status models.OrderStatus) error
	CountByStatus(db *gorm.DB, status models.OrderStatus) (int64, error)
}

type orderRepository struct{}

func NewOrderRepository() OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *orderRepository) FindByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll returns orders newest first, optionally filtered by status.
func (r *orderRepository) FindAll(db *gorm.DB, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	query := db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&orders).Error
	return orders, err
}

func (r *orderRepository) FindRecent(db *gorm.DB, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := db.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(db *gorm.DB, id uint, status models.OrderStatus) error {
	result := db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) CountByStatus(db *gorm.DB, status models.OrderStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
