package repositories

import (
	"errors"

	"gorm.io/gorm"

	"agency_admin/internal/models"
)

var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByID(db *gorm.DB, id uint) (*models.PortfolioItem, error)
	FindAll(db *gorm.DB) ([]models.PortfolioItem, error)
	// FindByCategory matches case-insensitively; the one-per-category
	// invariant means it should return 0 or 1 rows, but callers must handle
	// more (invariant repair).
	FindByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error)
	FindByCategoryExcluding(db *gorm.DB, category string, excludeID uint) ([]models.PortfolioItem, error)
	Update(db *gorm.DB, item *models.PortfolioItem) error
	Delete(db *gorm.DB, id uint) error
}

type portfolioRepository struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepository{}
}

func (r *portfolioRepository) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *portfolioRepository) FindByID(db *gorm.DB, id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns the catalog in creation order.
func (r *portfolioRepository) FindAll(db *gorm.DB) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *portfolioRepository) FindByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("LOWER(category) = LOWER(?)", category).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *portfolioRepository) FindByCategoryExcluding(db *gorm.DB, category string, excludeID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("LOWER(category) = LOWER(?) AND id <> ?", category, excludeID).
		Order("id ASC").Find(&items).Error
	return items, err
}

func (r *portfolioRepository) Update(db *gorm.DB, item *models.PortfolioItem) error {
	result := db.Model(&models.PortfolioItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"title":          item.Title,
		"description":    item.Description,
		"category":       item.Category,
		"image_filename": item.ImageFilename,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}

func (r *portfolioRepository) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.PortfolioItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}
