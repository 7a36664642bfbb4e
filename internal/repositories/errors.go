package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by repositories when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is wrapped when a unique constraint is violated.
var ErrDuplicate = errors.New("duplicate record")

// StockConflictError is returned when a conditional stock decrement would
// drive a product's stock below zero.
type StockConflictError struct {
	ProductID string
	Requested int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested: %d)", e.ProductID, e.Requested)
}
