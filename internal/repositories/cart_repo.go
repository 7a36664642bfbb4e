package repositories

import "poshstore/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	GetByUserID(userID string) ([]models.CartItem, error)
	Upsert(item *models.CartItem) error
	Remove(userID, productID string) error
	Clear(userID string) error
}
