package models

import "time"

// WishlistItem marks a product as saved by a user.
type WishlistItem struct {
	ID        uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"uniqueIndex:idx_wishlist_user_product;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"uniqueIndex:idx_wishlist_user_product;type:varchar(36)" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}
