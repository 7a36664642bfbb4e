package repositories

import (
	"fmt"
	"sync"

	"poshstore/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// GetByIDs returns the products matching the given IDs; missing IDs are
// absent from the result.
func (r *MockProductRepository) GetByIDs(ids []string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// DecrementStock atomically subtracts quantity under the repository lock,
// mirroring the conditional update of the GORM implementation.
func (r *MockProductRepository) DecrementStock(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.decrementStockLocked(id, quantity)
}

func (r *MockProductRepository) decrementStockLocked(id string, quantity int) error {
	product, ok := r.products[id]
	if !ok || product.StockQuantity < quantity {
		return &StockConflictError{ProductID: id, Requested: quantity}
	}
	product.StockQuantity -= quantity
	r.products[id] = product
	return nil
}

// ApplyDecrements applies all decrements under a single lock, all-or-nothing,
// mirroring the transactional behavior of the GORM order repository.
func (r *MockProductRepository) ApplyDecrements(decrements []StockDecrement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range decrements {
		if err := r.decrementStockLocked(d.ProductID, d.Quantity); err != nil {
			for _, applied := range decrements[:i] {
				product := r.products[applied.ProductID]
				product.StockQuantity += applied.Quantity
				r.products[applied.ProductID] = product
			}
			return err
		}
	}
	return nil
}
