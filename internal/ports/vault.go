package ports

import (
	"context"

	"calcvault/internal/domain"
)

// DocumentStore persists the vault document as one atomic blob
type DocumentStore interface {
	// Load returns the stored document. A missing or unreadable blob yields
	// domain.NewDocument(); an error means the storage itself failed.
	Load(ctx context.Context) (*domain.Document, error)

	// Save replaces the stored document in a single write
	Save(ctx context.Context, doc *domain.Document) error

	// Wipe removes the stored document entirely
	Wipe(ctx context.Context) error
}
