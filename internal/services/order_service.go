package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"poshstore/internal/models"
	"poshstore/internal/repositories"
	"poshstore/pkg/metrics"

	"github.com/google/uuid"
)

// orderSequence is the named counter backing order numbers.
const orderSequence = "orderId"

// orderNumberPrefix is the brand code prepended to every order number.
const orderNumberPrefix = "POSH"

// FormatOrderNumber renders a sequence value as an external order number:
// the brand code followed by the value zero-padded to nine digits. The
// mapping is deterministic and locale-independent.
func FormatOrderNumber(sequence int64) string {
	return fmt.Sprintf("%s%09d", orderNumberPrefix, sequence)
}

// ProductRef accepts a product reference arriving either as a bare id string
// or as an embedded product object, and normalizes both to the id. Anything
// else unmarshals to the empty string and is rejected during validation.
type ProductRef string

// UnmarshalJSON implements the tolerant union decoding.
func (r *ProductRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = ProductRef(s)
		return nil
	}

	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		*r = ""
		return nil
	}
	if obj.MongoID != "" {
		*r = ProductRef(obj.MongoID)
	} else {
		*r = ProductRef(obj.ID)
	}
	return nil
}

// OrderItemRequest is one requested line item. Name, price and image are the
// client's snapshot of the product at cart time.
type OrderItemRequest struct {
	ProductID ProductRef `json:"productId"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	Image     string     `json:"image"`
}

// CreateOrderRequest is the order ingestion input. The price breakdown is
// client-supplied and stored as-is (price lock at cart time).
type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	PaymentResult   *models.PaymentResult  `json:"paymentResult"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// PublicOrderStatus is the redacted view served to unauthenticated order
// tracking. It deliberately excludes the address, items, buyer and payment
// gateway metadata.
type PublicOrderStatus struct {
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	IsPaid      bool      `json:"isPaid"`
	TotalPrice  float64   `json:"totalPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderService handles order ingestion and the order status lifecycle.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	counterRepo repositories.CounterRepository
	notifier    *Notifier
	metrics     *metrics.StoreMetrics
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	counterRepo repositories.CounterRepository,
	notifier *Notifier,
	storeMetrics *metrics.StoreMetrics,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		counterRepo: counterRepo,
		notifier:    notifier,
		metrics:     storeMetrics,
	}
}

// CreateOrder validates the request against live inventory, draws an order
// number, and persists the order together with its stock decrements in one
// transaction. Validation accumulates every violation before rejecting, and
// a rejected request leaves no side effects behind.
func (s *OrderService) CreateOrder(userID string, req *CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		s.countRejected()
		return nil, newValidationError("No order items")
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		s.countRejected()
		return nil, newValidationError(fmt.Sprintf("Invalid payment method: %s", req.PaymentMethod))
	}

	// Normalize product references up front; collect the resolvable ids for
	// one bulk catalog query.
	productIDs := make([]string, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		if id := string(item.ProductID); id != "" {
			if _, err := uuid.Parse(id); err == nil {
				productIDs = append(productIDs, id)
			}
		}
	}
	if len(productIDs) == 0 {
		s.countRejected()
		return nil, newValidationError("No valid product references in order items")
	}

	products, err := s.productRepo.GetByIDs(productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for order: %w", err)
	}
	productsByID := make(map[string]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	// Aggregate every violation rather than failing on the first, so the
	// buyer can fix all lines in a single retry.
	var violations []string
	for _, item := range req.OrderItems {
		id := string(item.ProductID)
		name := item.Name
		if name == "" {
			name = "Unknown Product"
		}

		if id == "" {
			violations = append(violations, fmt.Sprintf("Invalid product reference for item: %s", name))
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			violations = append(violations, fmt.Sprintf("Invalid product reference for item: %s (%s)", name, id))
			continue
		}
		if item.Quantity < 1 {
			violations = append(violations, fmt.Sprintf("Quantity must be at least 1 for item: %s", name))
			continue
		}

		product, ok := productsByID[id]
		if !ok {
			violations = append(violations, fmt.Sprintf("Product with ID %s not found", id))
			continue
		}
		if product.StockQuantity < item.Quantity {
			violations = append(violations, fmt.Sprintf(
				"Not enough stock for %s. Available: %d, Requested: %d",
				product.Name, product.StockQuantity, item.Quantity))
		}
	}
	if len(violations) > 0 {
		s.countRejected()
		return nil, &ValidationError{Message: "Order validation failed", Details: violations}
	}

	// The sequence value is consumed here; if persistence fails below, the
	// value is skipped. Gaps in order numbers are acceptable, duplicates
	// are not.
	sequence, err := s.counterRepo.NextValue(orderSequence)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate order number: %w", err)
	}
	if s.metrics != nil {
		s.metrics.SequenceDraws.Inc()
	}

	paidByCard := req.PaymentMethod == models.PaymentMethodCard
	now := time.Now()

	order := &models.Order{
		UserID:          userID,
		OrderNumber:     FormatOrderNumber(sequence),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      req.ItemsPrice,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		TotalPrice:      req.TotalPrice,
		IsPaid:          paidByCard,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusNotPaid,
	}
	if paidByCard {
		order.PaidAt = &now
		order.Status = models.OrderStatusProcessing
		order.PaymentStatus = models.PaymentStatusPaid
	}
	if req.PaymentResult != nil {
		order.PaymentResult = *req.PaymentResult
	}

	decrements := make([]repositories.StockDecrement, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID: string(item.ProductID),
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
		decrements = append(decrements, repositories.StockDecrement{
			ProductID: string(item.ProductID),
			Quantity:  item.Quantity,
		})
	}

	if err := s.orderRepo.Create(order, decrements); err != nil {
		var conflict *repositories.StockConflictError
		if errors.As(err, &conflict) && s.metrics != nil {
			s.metrics.StockConflicts.Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
		s.metrics.OrderValue.Observe(order.TotalPrice)
	}
	if s.notifier != nil {
		s.notifier.OrderCreated(order)
	}
	return order, nil
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetMyOrders retrieves the caller's own orders.
func (s *OrderService) GetMyOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderByID retrieves a single order, enforcing that the requester is
// either the order's owner or an operator.
func (s *OrderService) GetOrderByID(id, requesterID string, operator bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && !operator {
		return nil, ErrForbidden
	}
	return order, nil
}

// GetPublicStatus resolves an order number to its redacted public view.
func (s *OrderService) GetPublicStatus(orderNumber string) (*PublicOrderStatus, error) {
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	return &PublicOrderStatus{
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		IsPaid:      order.IsPaid,
		TotalPrice:  order.TotalPrice,
		CreatedAt:   order.CreatedAt,
	}, nil
}

// UpdateStatus sets the order status to any value of the fixed enumeration
// and keeps the delivered flags consistent: Delivered stamps them, demotion
// from Delivered clears them.
func (s *OrderService) UpdateStatus(id, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, newValidationError(fmt.Sprintf("Invalid status provided: %s", status))
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if status == models.OrderStatusDelivered && !order.IsDelivered {
		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now
	} else if status != models.OrderStatusDelivered && order.IsDelivered {
		order.IsDelivered = false
		order.DeliveredAt = nil
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.OrderStatusUpdated(order)
	}
	return order, nil
}

// MarkDelivered is equivalent to setting the status to Delivered.
func (s *OrderService) MarkDelivered(id string) (*models.Order, error) {
	return s.UpdateStatus(id, models.OrderStatusDelivered)
}

// UpdatePaymentStatus sets the payment status. Paid stamps isPaid/paidAt
// idempotently; any other value clears them.
func (s *OrderService) UpdatePaymentStatus(id, status string) (*models.Order, error) {
	if !models.IsValidPaymentStatus(status) {
		return nil, newValidationError(fmt.Sprintf("Invalid payment status: %s", status))
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = status
	if status == models.PaymentStatusPaid {
		order.IsPaid = true
		if order.PaidAt == nil {
			now := time.Now()
			order.PaidAt = &now
		}
	} else {
		order.IsPaid = false
		order.PaidAt = nil
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.PaymentStatusUpdated(order)
	}
	return order, nil
}

// AttachPaymentProof records a bank transfer reference and proof image URL
// on the order. Only the order's owner or an operator may attach proof.
func (s *OrderService) AttachPaymentProof(id, requesterID string, operator bool, bankReference, proofURL string) (*models.Order, error) {
	if proofURL == "" {
		return nil, newValidationError("Payment proof URL is required")
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && !operator {
		return nil, ErrForbidden
	}

	now := time.Now()
	order.BankReference = bankReference
	order.BankTransferProof = proofURL
	order.PaymentProofUploadedAt = &now
	order.PaymentStatus = models.PaymentStatusProcessing

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder hard-deletes an order.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

func (s *OrderService) countRejected() {
	if s.metrics != nil {
		s.metrics.OrdersRejected.Inc()
	}
}
