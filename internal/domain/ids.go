package domain

import "github.com/google/uuid"

// IDGenerator produces identifiers for new items
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDs, unique even when called many times
// within the same millisecond
type UUIDGenerator struct{}

// NewID returns a new random UUID string
func (UUIDGenerator) NewID() string { return uuid.NewString() }
