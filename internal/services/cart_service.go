package services

import (
	"fmt"

	"poshstore/internal/models"
	"poshstore/internal/repositories"
)

// CartService handles the per-user shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart retrieves the user's cart items.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUserID(userID)
}

// SetItem adds a product to the cart or replaces its quantity. The product
// must exist; stock is only checked at order time.
func (s *CartService) SetItem(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, newValidationError("Quantity must be at least 1")
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, fmt.Errorf("cannot add product to cart: %w", err)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem removes one product from the user's cart.
func (s *CartService) RemoveItem(userID, productID string) error {
	return s.cartRepo.Remove(userID, productID)
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) error {
	return s.cartRepo.Clear(userID)
}
