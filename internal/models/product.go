package models

import "gorm.io/gorm"

// Product catalog statuses.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

// ProductImage is a hosted image attached to a product.
type ProductImage struct {
	ID         uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	ProductID  string `json:"-" gorm:"index;type:varchar(36)"`
	URL        string `json:"url" validate:"required"`
	IsFeatured bool   `json:"isFeatured"`
}

// Product represents a catalog product. StockQuantity is the inventory pool
// consumed by order ingestion and must never go negative.
type Product struct {
	ID                 string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name               string         `json:"name" validate:"required,min=3,max=100"`
	Slug               string         `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Description        string         `json:"description" validate:"omitempty,max=2000"`
	RichDescription    string         `json:"richDescription" validate:"omitempty,max=5000"`
	Price              float64        `json:"price" validate:"required,gt=0"`
	SalePrice          float64        `json:"salePrice" validate:"omitempty,gte=0"`
	DiscountPercentage float64        `json:"discountPercentage" validate:"gte=0,lte=100"`
	CategoryID         string         `json:"categoryId" gorm:"index;type:varchar(36)"`
	Brand              string         `json:"brand" validate:"omitempty,max=50"`
	SKU                string         `json:"sku" gorm:"type:varchar(64)"`
	StockQuantity      int            `json:"stockQuantity" validate:"gte=0"`
	Images             []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Thumbnail          string         `json:"thumbnail"`
	IsFeatured         bool           `json:"isFeatured"`
	OnSale             bool           `json:"onSale"`
	Status             string         `json:"status" gorm:"type:varchar(16)" validate:"omitempty,oneof=active inactive draft"`
	gorm.Model         `json:"-"`
}
