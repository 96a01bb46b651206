package commands

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"calcvault/internal/adapters/memory"
	"calcvault/internal/application"
	"calcvault/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// seqIDs hands out predictable IDs
type seqIDs struct {
	mu   sync.Mutex
	next int
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

// newTestVault returns a vault backed by a memory store seeded with doc
func newTestVault(t *testing.T, doc *domain.Document) (*application.Vault, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	if doc != nil {
		if err := store.Save(context.Background(), doc); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return application.NewVault(store, zerolog.Nop()), store
}

func mustLoad(t *testing.T, v *application.Vault) *domain.Document {
	t.Helper()
	doc, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc
}

// sampleDocument is:
//
//	root
//	├── Photos (f1)
//	│   ├── 2024 (f2)
//	│   └── beach.png (a)
//	├── Music (f3)
//	└── notes.txt (b)
func sampleDocument() *domain.Document {
	return &domain.Document{
		Folders: []domain.Folder{
			{ID: "f1", Name: "Photos", ParentID: domain.RootID},
			{ID: "f2", Name: "2024", ParentID: "f1"},
			{ID: "f3", Name: "Music", ParentID: domain.RootID},
		},
		Files: []domain.File{
			{ID: "a", Name: "beach.png", MimeType: "image/png", Data: domain.EncodeDataURL("image/png", []byte("png")), FolderID: "f1"},
			{ID: "b", Name: "notes.txt", MimeType: "text/plain", Data: domain.EncodeDataURL("text/plain", []byte("hello")), FolderID: domain.RootID},
		},
	}
}
