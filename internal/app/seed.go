package app

import (
	"bytes"
	"context"
	"fmt"

	"agency_admin/internal/auth"
	"agency_admin/internal/config"
	"agency_admin/internal/imageprocessor"
	"agency_admin/internal/logger"
	"agency_admin/internal/models"
	"agency_admin/internal/repositories"
	"agency_admin/internal/storage"

	"gorm.io/gorm"
)

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials not configured, skipping admin seeding")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	count, err := userRepo.CountByUsername(db, cfg.Admin.Username)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username: cfg.Admin.Username,
		Password: hashed,
		Name:     cfg.Admin.Name,
		IsAdmin:  true,
	}
	if err := userRepo.Create(db, newAdmin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created admin user", "username", cfg.Admin.Username)
	return nil
}

// seedDefaultPortfolio fills an empty catalog with one sample item per
// category so the public site has something to show from day one.
// Sample images are drawn locally.
func seedDefaultPortfolio(db *gorm.DB, cfg *config.Config, store storage.Storage) error {
	var count int64
	if err := db.Model(&models.PortfolioItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count portfolio items: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []models.PortfolioItem{
		{
			Title:         "Business Card Printing",
			Description:   "Full-color offset printing for corporate stationery.",
			Category:      string(models.CategoryPrintingPress),
			ImageFilename: "printing_press_default.png",
		},
		{
			Title:         "Search Ranking Campaign",
			Description:   "On-page and off-page optimization for organic reach.",
			Category:      string(models.CategorySEO),
			ImageFilename: "seo_default.png",
		},
		{
			Title:         "Brand Starter Bundle",
			Description:   "Combined print and digital package for new businesses.",
			Category:      string(models.CategoryPackagesSolutions),
			ImageFilename: "packages_default.png",
		},
	}

	ctx := context.Background()
	for _, item := range defaults {
		img, err := imageprocessor.GeneratePlaceholder(item.ImageFilename)
		if err != nil {
			return fmt.Errorf("failed to draw sample image %s: %w", item.ImageFilename, err)
		}
		if err := store.Save(ctx, item.ImageFilename, bytes.NewReader(img.Bytes()), "image/png"); err != nil {
			return fmt.Errorf("failed to store sample image %s: %w", item.ImageFilename, err)
		}
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create sample portfolio item: %w", err)
		}
	}

	logger.Info("Seeded default portfolio items", "count", len(defaults))
	return nil
}
