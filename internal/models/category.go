package models

import "gorm.io/gorm"

// Category groups products in the catalog.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Image       string `json:"image"`
	gorm.Model  `json:"-"`
}
