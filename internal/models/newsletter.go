package models

import "time"

// NewsletterSubscriber is a newsletter signup. Email is unique; repeated
// subscriptions are rejected at the persistence layer.
type NewsletterSubscriber struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	CreatedAt time.Time `json:"createdAt"`
}
