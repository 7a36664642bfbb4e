package services

import (
	"poshstore/internal/models"
	"poshstore/internal/repositories"
)

// DeliveryLocationService handles business logic related to delivery locations.
type DeliveryLocationService struct {
	repo repositories.DeliveryLocationRepository
}

// NewDeliveryLocationService creates a new DeliveryLocationService.
func NewDeliveryLocationService(repo repositories.DeliveryLocationRepository) *DeliveryLocationService {
	return &DeliveryLocationService{
		repo: repo,
	}
}

// ListLocations retrieves delivery locations, active-only unless
// includeInactive is set.
func (s *DeliveryLocationService) ListLocations(includeInactive bool) ([]models.DeliveryLocation, error) {
	return s.repo.GetAll(includeInactive)
}

// GetLocationByID retrieves a single delivery location by its ID.
func (s *DeliveryLocationService) GetLocationByID(id string) (*models.DeliveryLocation, error) {
	return s.repo.GetByID(id)
}

// CreateLocation creates a new delivery location.
func (s *DeliveryLocationService) CreateLocation(location *models.DeliveryLocation) error {
	return s.repo.Create(location)
}

// UpdateLocation updates an existing delivery location.
func (s *DeliveryLocationService) UpdateLocation(location *models.DeliveryLocation) error {
	return s.repo.Update(location)
}

// DeleteLocation deletes a delivery location by its ID.
func (s *DeliveryLocationService) DeleteLocation(id string) error {
	return s.repo.Delete(id)
}
