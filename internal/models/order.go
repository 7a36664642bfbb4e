package models

import "time"

// Order statuses. Delivered is the only status tied to derived flags;
// the others carry no ordering constraints between them.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusRefunded   = "Refunded"
)

// Payment statuses, independent of the order status machine.
const (
	PaymentStatusPaid       = "Paid"
	PaymentStatusProcessing = "Processing"
	PaymentStatusNotPaid    = "Not Paid"
)

// Accepted payment methods.
const (
	PaymentMethodCashOnDelivery = "Cash on Delivery"
	PaymentMethodBankTransfer   = "Bank Transfer"
	PaymentMethodCard           = "Credit/Debit Card"
	PaymentMethodWhatsApp       = "WhatsApp"
)

// IsValidOrderStatus reports whether s is one of the fixed order statuses.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// IsValidPaymentStatus reports whether s is one of the fixed payment statuses.
func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusProcessing, PaymentStatusNotPaid:
		return true
	}
	return false
}

// IsValidPaymentMethod reports whether m is one of the accepted payment methods.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodBankTransfer,
		PaymentMethodCard, PaymentMethodWhatsApp:
		return true
	}
	return false
}

// OrderItem is a line item within an order. Name, price and image are
// snapshots taken at order time; they are never re-derived from the catalog.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"productId" gorm:"type:varchar(36)"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// ShippingAddress is embedded in the order and immutable after creation.
type ShippingAddress struct {
	FullName string `json:"fullName" validate:"required"`
	Address1 string `json:"address1" validate:"required"`
	Address2 string `json:"address2"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country" validate:"required"`
	Note     string `json:"note"`
}

// PaymentResult holds opaque payment gateway metadata.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// Order is the aggregate root of the order core. It is created once by
// order ingestion; only status and payment fields are mutated afterwards.
type Order struct {
	ID                     string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID                 string          `json:"userId" gorm:"index;type:varchar(36)"`
	OrderNumber            string          `json:"orderNumber" gorm:"uniqueIndex;type:varchar(16)"`
	OrderItems             []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress        ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	PaymentMethod          string          `json:"paymentMethod" gorm:"type:varchar(32)"`
	PaymentResult          PaymentResult   `json:"paymentResult" gorm:"embedded;embeddedPrefix:payment_"`
	ItemsPrice             float64         `json:"itemsPrice"`
	TaxPrice               float64         `json:"taxPrice"`
	ShippingPrice          float64         `json:"shippingPrice"`
	TotalPrice             float64         `json:"totalPrice"`
	IsPaid                 bool            `json:"isPaid"`
	PaidAt                 *time.Time      `json:"paidAt"`
	IsDelivered            bool            `json:"isDelivered"`
	DeliveredAt            *time.Time      `json:"deliveredAt"`
	Status                 string          `json:"status" gorm:"type:varchar(16)"`
	PaymentStatus          string          `json:"paymentStatus" gorm:"type:varchar(16)"`
	BankReference          string          `json:"bankReference"`
	BankTransferProof      string          `json:"bankTransferProof"`
	PaymentProofUploadedAt *time.Time      `json:"paymentProofUploadedAt"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}
