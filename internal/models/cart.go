package models

import "time"

// CartItem is one product/quantity entry in a user's cart. A user has at
// most one row per product.
type CartItem struct {
	ID        uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
