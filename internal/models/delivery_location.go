package models

import "gorm.io/gorm"

// DeliveryLocation is a serviceable delivery area with its shipping fee.
// Inactive locations stay in the catalog but are hidden from customers.
type DeliveryLocation struct {
	ID             string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Description    string  `json:"description" validate:"omitempty,max=500"`
	ShippingAmount float64 `json:"shippingAmount" validate:"gte=0"`
	IsActive       bool    `json:"isActive"`
	SortOrder      int     `json:"sortOrder"`
	gorm.Model     `json:"-"`
}
