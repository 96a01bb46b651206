package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// Store keeps the encoded vault document in memory. It encodes on save and
// decodes on load exactly like the persistent stores, which makes it useful
// for tests. This implementation is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	blob  []byte
	saves int
}

// Ensure Store implements DocumentStore
var _ ports.DocumentStore = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{}
}

// Load decodes the stored blob, falling back to the default document
func (s *Store) Load(_ context.Context) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.blob) == 0 {
		return domain.NewDocument(), nil
	}

	var doc domain.Document
	if err := json.Unmarshal(s.blob, &doc); err != nil {
		return domain.NewDocument(), nil
	}
	return doc.Normalize(), nil
}

// Save encodes and stores the whole document
func (s *Store) Save(_ context.Context, doc *domain.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = b
	s.saves++
	return nil
}

// Wipe drops the stored blob
func (s *Store) Wipe(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = nil
	return nil
}

// SetRaw replaces the stored blob verbatim, bypassing encoding
func (s *Store) SetRaw(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = b
}

// Saves returns how many times Save was called
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
