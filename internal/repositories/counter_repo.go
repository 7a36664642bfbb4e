package repositories

// CounterRepository allocates values from named, durable sequences.
type CounterRepository interface {
	// NextValue atomically increments the named counter and returns the new
	// value. A counter that does not exist yet is created at zero, so the
	// first call returns 1. Concurrent callers never observe duplicates.
	NextValue(name string) (int64, error)
}
