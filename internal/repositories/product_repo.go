package repositories

import (
	"poshstore/internal/models"
)

// ProductRepository defines the interface for product data access. The order
// core consumes only GetByIDs and DecrementStock; it never mutates any other
// product field.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByIDs(ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically subtracts quantity from the product's stock,
	// failing with a StockConflictError if the result would be negative.
	DecrementStock(id string, quantity int) error
}
