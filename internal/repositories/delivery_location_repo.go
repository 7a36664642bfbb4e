package repositories

import "poshstore/internal/models"

// DeliveryLocationRepository defines the interface for delivery location data access.
type DeliveryLocationRepository interface {
	// GetAll returns locations ordered by sort order, then creation time.
	// When includeInactive is false only active locations are returned.
	GetAll(includeInactive bool) ([]models.DeliveryLocation, error)
	GetByID(id string) (*models.DeliveryLocation, error)
	Create(location *models.DeliveryLocation) error
	Update(location *models.DeliveryLocation) error
	Delete(id string) error
}
