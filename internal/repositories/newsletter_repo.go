package repositories

import "poshstore/internal/models"

// NewsletterRepository defines the interface for newsletter subscriber data access.
type NewsletterRepository interface {
	GetAll() ([]models.NewsletterSubscriber, error)
	Subscribe(subscriber *models.NewsletterSubscriber) error
	Unsubscribe(email string) error
}
