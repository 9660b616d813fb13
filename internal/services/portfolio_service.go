package services

import (
	"context"
	"mime"
	"mime/multipart"
	"path/filepath"
	"time"

	"agency_admin/internal/config"
	"agency_admin/internal/imageprocessor"
	"agency_admin/internal/logger"
	"agency_admin/internal/models"
	"agency_admin/internal/repositories"
	"agency_admin/internal/services/dto"
	"agency_admin/internal/storage"
	"agency_admin/internal/syncer"
	"agency_admin/pkg/apperrors"

	"gorm.io/gorm"
)

// PortfolioService maintains the showcase catalog. The catalog holds at
// most one item per canonical category; Add and Update repair any
// duplicates they find while writing.
type PortfolioService interface {
	List(db *gorm.DB) ([]models.PortfolioItem, error)
	Get(db *gorm.DB, id uint) (*models.PortfolioItem, error)
	Add(db *gorm.DB, req *dto.CreatePortfolioRequest, file *multipart.FileHeader) (*models.PortfolioItem, error)
	Update(db *gorm.DB, id uint, req *dto.UpdatePortfolioRequest, file *multipart.FileHeader) (*models.PortfolioItem, error)
	Delete(db *gorm.DB, id uint) error
}

type portfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	store         storage.Storage
	processor     *imageprocessor.Processor
	notifier      syncer.Notifier
	cfg           *config.Config
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
	notifier syncer.Notifier,
	cfg *config.Config,
) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		store:         store,
		processor:     processor,
		notifier:      notifier,
		cfg:           cfg,
	}
}

func (s *portfolioService) List(db *gorm.DB) ([]models.PortfolioItem, error) {
	items, err := s.portfolioRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *portfolioService) Get(db *gorm.DB, id uint) (*models.PortfolioItem, error) {
	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

// Add stores the image, removes every existing item whose category
// matches the normalized one (case-insensitively), and inserts the new
// item. Validation runs before any file is written.
func (s *portfolioService) Add(db *gorm.DB, req *dto.CreatePortfolioRequest, file *multipart.FileHeader) (*models.PortfolioItem, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("image file is required")
	}

	category := models.NormalizeCategory(req.Category)
	filename, err := s.storeUpload(file)
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		s.discardFile(filename)
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.purgeCategory(tx, string(category), 0); err != nil {
		s.discardFile(filename)
		return nil, err
	}

	item := &models.PortfolioItem{
		Title:         req.Title,
		Description:   req.Description,
		Category:      string(category),
		ImageFilename: filename,
	}
	if err := s.portfolioRepo.Create(tx, item); err != nil {
		s.discardFile(filename)
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		s.discardFile(filename)
		return nil, apperrors.InternalError(err)
	}

	s.dispatchSnapshot(db)
	return item, nil
}

// Update rewrites the item in place. When the category changes or a new
// image arrives, every other item in the target category is removed so
// the one-per-category shape holds. An absent file keeps the current
// image.
func (s *portfolioService) Update(db *gorm.DB, id uint, req *dto.UpdatePortfolioRequest, file *multipart.FileHeader) (*models.PortfolioItem, error) {
	item, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}

	category := models.NormalizeCategory(req.Category)
	categoryChanged := string(category) != item.Category

	oldFilename := item.ImageFilename
	newFilename := ""
	if file != nil {
		newFilename, err = s.storeUpload(file)
		if err != nil {
			return nil, err
		}
	}

	tx := db.Begin()
	if tx.Error != nil {
		s.discardFile(newFilename)
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if categoryChanged || file != nil {
		if err := s.purgeCategory(tx, string(category), item.ID); err != nil {
			s.discardFile(newFilename)
			return nil, err
		}
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Category = string(category)
	if newFilename != "" {
		item.ImageFilename = newFilename
	}
	if err := s.portfolioRepo.Update(tx, item); err != nil {
		s.discardFile(newFilename)
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		s.discardFile(newFilename)
		return nil, apperrors.InternalError(err)
	}

	if newFilename != "" && oldFilename != "" && oldFilename != newFilename {
		s.discardFile(oldFilename)
	}

	s.dispatchSnapshot(db)
	return item, nil
}

func (s *portfolioService) Delete(db *gorm.DB, id uint) error {
	item, err := s.Get(db, id)
	if err != nil {
		return err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.portfolioRepo.Delete(tx, id); err != nil {
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found")
		}
		return apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	s.discardFile(item.ImageFilename)
	s.dispatchSnapshot(db)
	return nil
}

// purgeCategory removes every item in the category except excludeID.
// Image files go first, best effort; row deletion failures abort.
func (s *portfolioService) purgeCategory(tx *gorm.DB, category string, excludeID uint) error {
	var (
		stale []models.PortfolioItem
		err   error
	)
	if excludeID == 0 {
		stale, err = s.portfolioRepo.FindByCategory(tx, category)
	} else {
		stale, err = s.portfolioRepo.FindByCategoryExcluding(tx, category, excludeID)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}

	for _, old := range stale {
		s.discardFile(old.ImageFilename)
		if err := s.portfolioRepo.Delete(tx, old.ID); err != nil {
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// storeUpload validates, normalizes and persists an uploaded image,
// returning the generated filename.
func (s *portfolioService) storeUpload(file *multipart.FileHeader) (string, error) {
	if !storage.AllowedExtension(file.Filename, s.cfg.Upload.AllowedExtensions) {
		return "", apperrors.ErrInvalidMediaType
	}
	if file.Size > s.cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	processed, err := s.processor.Process(src)
	if err != nil {
		return "", apperrors.NewBadRequestError("file is not a readable image")
	}

	filename := storage.GenerateFilename(file.Filename)
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if err := s.store.Save(context.Background(), filename, processed, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}
	return filename, nil
}

func (s *portfolioService) discardFile(filename string) {
	if filename == "" {
		return
	}
	if err := s.store.Delete(context.Background(), filename); err != nil {
		logger.Warn("portfolio image delete failed", "filename", filename, "error", err)
	}
}

// dispatchSnapshot publishes the full catalog after a successful write.
// Snapshot reads use a fresh query so they reflect the committed state.
func (s *portfolioService) dispatchSnapshot(db *gorm.DB) {
	items, err := s.portfolioRepo.FindAll(db)
	if err != nil {
		logger.Warn("portfolio snapshot query failed", "error", err)
		return
	}
	timeout := time.Duration(s.cfg.Sync.TimeoutSec) * time.Second
	syncer.Dispatch(s.notifier, syncer.Snapshot(items), timeout)
}
