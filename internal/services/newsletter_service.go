package services

import (
	"poshstore/internal/models"
	"poshstore/internal/repositories"
)

// NewsletterService handles newsletter subscriptions.
type NewsletterService struct {
	repo repositories.NewsletterRepository
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(repo repositories.NewsletterRepository) *NewsletterService {
	return &NewsletterService{
		repo: repo,
	}
}

// Subscribe registers a new subscriber email.
func (s *NewsletterService) Subscribe(email string) (*models.NewsletterSubscriber, error) {
	subscriber := &models.NewsletterSubscriber{Email: email}
	if err := s.repo.Subscribe(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// Unsubscribe removes a subscriber email.
func (s *NewsletterService) Unsubscribe(email string) error {
	return s.repo.Unsubscribe(email)
}

// GetSubscribers lists all subscribers.
func (s *NewsletterService) GetSubscribers() ([]models.NewsletterSubscriber, error) {
	return s.repo.GetAll()
}
