package repositories

import (
	"fmt"

	"poshstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMDeliveryLocationRepository is a GORM implementation of DeliveryLocationRepository.
type GORMDeliveryLocationRepository struct {
	db *gorm.DB
}

// NewGORMDeliveryLocationRepository creates a new instance of GORMDeliveryLocationRepository.
func NewGORMDeliveryLocationRepository(db *gorm.DB) *GORMDeliveryLocationRepository {
	return &GORMDeliveryLocationRepository{
		db: db,
	}
}

// GetAll retrieves delivery locations ordered by sort order, then creation time.
func (r *GORMDeliveryLocationRepository) GetAll(includeInactive bool) ([]models.DeliveryLocation, error) {
	var locations []models.DeliveryLocation
	query := r.db.Order("sort_order, created_at")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to get delivery locations: %w", err)
	}
	return locations, nil
}

// GetByID retrieves a single delivery location by its ID.
func (r *GORMDeliveryLocationRepository) GetByID(id string) (*models.DeliveryLocation, error) {
	var location models.DeliveryLocation
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("delivery location with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get delivery location by ID %s: %w", id, err)
	}
	return &location, nil
}

// Create creates a new delivery location.
func (r *GORMDeliveryLocationRepository) Create(location *models.DeliveryLocation) error {
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	if err := r.db.Create(location).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("delivery location %s: %w", location.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create delivery location: %w", err)
	}
	return nil
}

// Update updates an existing delivery location.
func (r *GORMDeliveryLocationRepository) Update(location *models.DeliveryLocation) error {
	res := r.db.Model(location).Select("Name", "Description", "ShippingAmount", "IsActive", "SortOrder").Updates(location)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return fmt.Errorf("delivery location %s: %w", location.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to update delivery location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delivery location with ID %s: %w", location.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a delivery location by its ID.
func (r *GORMDeliveryLocationRepository) Delete(id string) error {
	res := r.db.Delete(&models.DeliveryLocation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete delivery location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delivery location with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
