package repositories

import (
	"poshstore/internal/models"
)

// StockDecrement names one product whose stock must be reserved when an
// order is created.
type StockDecrement struct {
	ProductID string
	Quantity  int
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	// Create persists the order and applies every stock decrement in one
	// transaction. A decrement that would drive stock negative aborts the
	// whole transaction with a StockConflictError: no order row and no
	// partial decrement survive.
	Create(order *models.Order, decrements []StockDecrement) error
	Update(order *models.Order) error
	Delete(id string) error
}
