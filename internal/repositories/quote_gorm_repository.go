package repositories

import (
	"fmt"

	"poshstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMQuoteRepository is a GORM implementation of QuoteRepository.
type GORMQuoteRepository struct {
	db *gorm.DB
}

// NewGORMQuoteRepository creates a new instance of GORMQuoteRepository.
func NewGORMQuoteRepository(db *gorm.DB) *GORMQuoteRepository {
	return &GORMQuoteRepository{
		db: db,
	}
}

// GetAll retrieves all quote requests, newest first.
func (r *GORMQuoteRepository) GetAll() ([]models.QuoteRequest, error) {
	var quotes []models.QuoteRequest
	if err := r.db.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("failed to get quote requests: %w", err)
	}
	return quotes, nil
}

// Create stores a new quote request.
func (r *GORMQuoteRepository) Create(quote *models.QuoteRequest) error {
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	if err := r.db.Create(quote).Error; err != nil {
		return fmt.Errorf("failed to create quote request: %w", err)
	}
	return nil
}

// Delete removes a quote request by its ID.
func (r *GORMQuoteRepository) Delete(id string) error {
	res := r.db.Delete(&models.QuoteRequest{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete quote request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("quote request with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
