package services

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mrfixit/internal/models"
)

// ContactService accepts contact form and newsletter submissions and hands
// them to the broker.
type ContactService struct {
	publisher EventPublisher
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(publisher EventPublisher, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Submit validates a contact message, stamps it and publishes it.
func (s *ContactService) Submit(msg *models.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	if err := s.validate.Struct(msg); err != nil {
		return err
	}

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()

	publish(s.publisher, s.logger, models.EventContactSubmitted, msg)
	s.logger.Info("contact message received", zap.String("id", msg.ID), zap.String("subject", msg.Subject))
	return nil
}

// Subscribe validates a newsletter signup and publishes it.
func (s *ContactService) Subscribe(signup *models.NewsletterSignup) error {
	signup.Email = strings.ToLower(strings.TrimSpace(signup.Email))
	if err := s.validate.Struct(signup); err != nil {
		return err
	}

	publish(s.publisher, s.logger, models.EventNewsletterSubscribed, signup)
	return nil
}
