package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// GORMCounterRepository is a GORM implementation of CounterRepository. The
// increment is a single upsert statement, never a read-then-write pair, so
// the storage layer serializes concurrent callers.
type GORMCounterRepository struct {
	db *gorm.DB
}

// NewGORMCounterRepository creates a new instance of GORMCounterRepository.
func NewGORMCounterRepository(db *gorm.DB) *GORMCounterRepository {
	return &GORMCounterRepository{
		db: db,
	}
}

// NextValue increments and returns the counter in one atomic statement.
func (r *GORMCounterRepository) NextValue(name string) (int64, error) {
	var value int64
	err := r.db.Raw(
		`INSERT INTO counters (name, current_value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET current_value = counters.current_value + 1
		 RETURNING current_value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter %s: %w", name, err)
	}
	return value, nil
}
