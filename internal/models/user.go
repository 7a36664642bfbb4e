package models

import "gorm.io/gorm"

// User roles. Admin and super admin are operators.
const (
	RoleUser       = "user"
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super admin"
)

// User represents a store account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Role       string `json:"role" gorm:"type:varchar(16)" validate:"omitempty,oneof=user customer admin 'super admin'"`
	IsActive   bool   `json:"isActive"`
	gorm.Model `json:"-"`
}

// IsOperator reports whether the user holds an administrative role.
func (u *User) IsOperator() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
