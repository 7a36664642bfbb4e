package repositories

import (
	"fmt"

	"poshstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMNewsletterRepository is a GORM implementation of NewsletterRepository.
type GORMNewsletterRepository struct {
	db *gorm.DB
}

// NewGORMNewsletterRepository creates a new instance of GORMNewsletterRepository.
func NewGORMNewsletterRepository(db *gorm.DB) *GORMNewsletterRepository {
	return &GORMNewsletterRepository{
		db: db,
	}
}

// GetAll retrieves all newsletter subscribers.
func (r *GORMNewsletterRepository) GetAll() ([]models.NewsletterSubscriber, error) {
	var subscribers []models.NewsletterSubscriber
	if err := r.db.Find(&subscribers).Error; err != nil {
		return nil, fmt.Errorf("failed to get newsletter subscribers: %w", err)
	}
	return subscribers, nil
}

// Subscribe stores a new subscriber; duplicate emails are rejected.
func (r *GORMNewsletterRepository) Subscribe(subscriber *models.NewsletterSubscriber) error {
	if subscriber.ID == "" {
		subscriber.ID = uuid.New().String()
	}
	if err := r.db.Create(subscriber).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("subscriber %s: %w", subscriber.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to subscribe %s: %w", subscriber.Email, err)
	}
	return nil
}

// Unsubscribe removes a subscriber by email.
func (r *GORMNewsletterRepository) Unsubscribe(email string) error {
	res := r.db.Delete(&models.NewsletterSubscriber{}, "email = ?", email)
	if res.Error != nil {
		return fmt.Errorf("failed to unsubscribe %s: %w", email, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("subscriber %s: %w", email, ErrNotFound)
	}
	return nil
}
