package models

// Counter is a named, durable, monotonically increasing sequence. It is the
// single source of truth for order-number uniqueness and is only ever mutated
// through an atomic increment-and-fetch.
type Counter struct {
	Name         string `json:"name" gorm:"primaryKey;type:varchar(64)"`
	CurrentValue int64  `json:"currentValue"`
}
