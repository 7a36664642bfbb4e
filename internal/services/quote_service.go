package services

import (
	"poshstore/internal/models"
	"poshstore/internal/repositories"
)

// QuoteService handles customer quote requests.
type QuoteService struct {
	repo repositories.QuoteRepository
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(repo repositories.QuoteRepository) *QuoteService {
	return &QuoteService{
		repo: repo,
	}
}

// SubmitQuote stores a new quote request.
func (s *QuoteService) SubmitQuote(quote *models.QuoteRequest) error {
	return s.repo.Create(quote)
}

// GetAllQuotes lists all quote requests.
func (s *QuoteService) GetAllQuotes() ([]models.QuoteRequest, error) {
	return s.repo.GetAll()
}

// DeleteQuote removes a quote request.
func (s *QuoteService) DeleteQuote(id string) error {
	return s.repo.Delete(id)
}
