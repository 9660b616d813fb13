package services

import (
	"fmt"
	"html"

	"agency_admin/internal/config"
	"agency_admin/internal/email"
	"agency_admin/internal/logger"
	"agency_admin/internal/models"
	"agency_admin/internal/repositories"
	"agency_admin/internal/services/dto"
	"agency_admin/pkg/apperrors"

	"gorm.io/gorm"
)

type ContactService interface {
	Create(db *gorm.DB, req *dto.CreateContactRequest) (*models.ContactMessage, error)
	List(db *gorm.DB) ([]models.ContactMessage, error)
	Recent(db *gorm.DB, limit int) ([]models.ContactMessage, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
	sender      email.Sender
	cfg         *config.Config
}

func NewContactService(contactRepo repositories.ContactRepository, sender email.Sender, cfg *config.Config) ContactService {
	return &contactService{contactRepo: contactRepo, sender: sender, cfg: cfg}
}

func (s *contactService) Create(db *gorm.DB, req *dto.CreateContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The admin alert must never block or fail the submission.
	if s.cfg.Email.Enabled && s.cfg.Email.NotifyEmail != "" {
		go s.notifyAdmin(message)
	}

	return message, nil
}

func (s *contactService) notifyAdmin(message *models.ContactMessage) {
	subject := fmt.Sprintf("New contact message from %s", message.Name)
	body := fmt.Sprintf(
		"<p><b>From:</b> %s (%s)</p><p><b>Subject:</b> %s</p><p>%s</p>",
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Message),
	)
	if err := s.sender.Send(s.cfg.Email.NotifyEmail, subject, body); err != nil {
		logger.Warn("contact alert email failed", "error", err, "message_id", message.ID)
	}
}

func (s *contactService) List(db *gorm.DB) ([]models.ContactMessage, error) {
	messages, err := s.contactRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

func (s *contactService) Recent(db *gorm.DB, limit int) ([]models.ContactMessage, error) {
	messages, err := s.contactRepo.FindRecent(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}
