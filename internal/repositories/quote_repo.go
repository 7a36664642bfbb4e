package repositories

import "poshstore/internal/models"

// QuoteRepository defines the interface for quote request data access.
type QuoteRepository interface {
	GetAll() ([]models.QuoteRequest, error)
	Create(quote *models.QuoteRequest) error
	Delete(id string) error
}
