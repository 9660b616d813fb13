package repositories

import (
	"errors"

	"gorm.io/gorm"

	"agency_admin/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	CountByUsername(db *gorm.DB, username string) (int64, error)
}

type userRepository struct{}

// Repositories are stateless; the db handle (pool or transaction) is passed
// per call.
func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountByUsername(db *gorm.DB, username string) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}
