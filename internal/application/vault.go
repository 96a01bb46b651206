package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// Observer is notified with a snapshot of the document after every save or wipe
type Observer func(doc *domain.Document)

// Vault serializes every read-modify-write of the document store. Each update
// re-reads the stored document right before mutating it, so concurrent
// writers (for instance two uploads finishing at the same time) never work on
// a stale snapshot and never lose each other's entries.
type Vault struct {
	store ports.DocumentStore
	log   zerolog.Logger

	mu sync.Mutex

	obsMu     sync.RWMutex
	observers []Observer
}

// NewVault wraps a document store
func NewVault(store ports.DocumentStore, log zerolog.Logger) *Vault {
	return &Vault{
		store: store,
		log:   log,
	}
}

// Load returns a copy of the current document
func (v *Vault) Load(ctx context.Context) (*domain.Document, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	doc, err := v.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vault: %w", err)
	}
	return doc, nil
}

// Update loads the document, applies fn and saves the result when fn reports
// a change. The whole sequence holds the vault lock.
func (v *Vault) Update(ctx context.Context, fn func(doc *domain.Document) bool) (*domain.Document, bool, error) {
	v.mu.Lock()

	doc, err := v.store.Load(ctx)
	if err != nil {
		v.mu.Unlock()
		return nil, false, fmt.Errorf("failed to load vault: %w", err)
	}

	if !fn(doc) {
		v.mu.Unlock()
		return doc, false, nil
	}

	if err := v.store.Save(ctx, doc); err != nil {
		v.mu.Unlock()
		return nil, false, fmt.Errorf("failed to save vault: %w", err)
	}
	v.mu.Unlock()

	v.log.Debug().
		Int("files", len(doc.Files)).
		Int("folders", len(doc.Folders)).
		Msg("vault saved")

	v.notify(doc)
	return doc, true, nil
}

// Wipe destroys the stored document. The next Load returns the default document.
func (v *Vault) Wipe(ctx context.Context) error {
	v.mu.Lock()
	err := v.store.Wipe(ctx)
	v.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to wipe vault: %w", err)
	}

	v.log.Info().Msg("vault wiped")
	v.notify(domain.NewDocument())
	return nil
}

// Subscribe registers an observer called after every save or wipe
func (v *Vault) Subscribe(fn Observer) {
	v.obsMu.Lock()
	defer v.obsMu.Unlock()
	v.observers = append(v.observers, fn)
}

func (v *Vault) notify(doc *domain.Document) {
	v.obsMu.RLock()
	observers := make([]Observer, len(v.observers))
	copy(observers, v.observers)
	v.obsMu.RUnlock()

	for _, fn := range observers {
		fn(doc.Clone())
	}
}
