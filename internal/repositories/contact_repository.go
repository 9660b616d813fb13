package repositories

import (
	"gorm.io/gorm"

	"agency_admin/internal/models"
)

type ContactRepository interface {
	Create(db *gorm.DB, message *models.ContactMessage) error
	FindAll(db *gorm.DB) ([]models.ContactMessage, error)
	FindRecent(db *gorm.DB, limit int) ([]models.ContactMessage, error)
}

type contactRepository struct{}

func NewContactRepository() ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Create(db *gorm.DB, message *models.ContactMessage) error {
	return db.Create(message).Error
}

func (r *contactRepository) FindAll(db *gorm.DB) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *contactRepository) FindRecent(db *gorm.DB, limit int) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := db.Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}
