package repositories

import "sync"

// MockCounterRepository is an in-memory implementation of CounterRepository.
type MockCounterRepository struct {
	counters map[string]int64
	mu       sync.Mutex
}

// NewMockCounterRepository creates a new instance of MockCounterRepository.
func NewMockCounterRepository() *MockCounterRepository {
	return &MockCounterRepository{
		counters: make(map[string]int64),
	}
}

// NextValue increments and returns the named counter under a single lock.
func (r *MockCounterRepository) NextValue(name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[name]++
	return r.counters[name], nil
}
