package models

import "gorm.io/gorm"

// BlogPost is a store blog entry.
type BlogPost struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `json:"title" validate:"required,min=3,max=200"`
	Content    string `json:"content" validate:"required"`
	Image      string `json:"image"`
	AuthorID   string `json:"authorId" gorm:"index;type:varchar(36)"`
	gorm.Model `json:"-"`
}
