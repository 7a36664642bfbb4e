package models

import "time"

// QuoteRequest is a customer inquiry about a product or a bulk purchase.
type QuoteRequest struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message" validate:"required,max=2000"`
	ProductID string    `json:"productId" gorm:"type:varchar(36)"`
	CreatedAt time.Time `json:"createdAt"`
}
