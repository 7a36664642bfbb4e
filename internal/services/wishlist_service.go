package services

import (
	"fmt"

	"poshstore/internal/models"
	"poshstore/internal/repositories"
)

// WishlistService handles the per-user wishlist.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist retrieves the user's wishlist.
func (s *WishlistService) GetWishlist(userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetByUserID(userID)
}

// AddProduct saves an existing product to the wishlist.
func (s *WishlistService) AddProduct(userID, productID string) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return fmt.Errorf("cannot add product to wishlist: %w", err)
	}
	return s.wishlistRepo.Add(&models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
}

// RemoveProduct removes a product from the wishlist.
func (s *WishlistService) RemoveProduct(userID, productID string) error {
	return s.wishlistRepo.Remove(userID, productID)
}
