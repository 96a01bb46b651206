package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"calcvault/internal/domain"
)

// BenchmarkSave benchmarks a full-document save of a mid-sized vault
func BenchmarkSave(b *testing.B) {
	s, err := Open(filepath.Join(b.TempDir(), "bench.db"), zerolog.Nop())
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	doc := domain.NewDocument()
	payload := make([]byte, 16<<10)
	for i := range 200 {
		doc.Files = append(doc.Files, domain.File{
			ID:       fmt.Sprintf("file-%d", i),
			Name:     fmt.Sprintf("photo-%d.jpg", i),
			MimeType: "image/jpeg",
			Data:     domain.EncodeDataURL("image/jpeg", payload),
			FolderID: domain.RootID,
		})
	}

	ctx := context.Background()
	b.ResetTimer()
	for b.Loop() {
		if err := s.Save(ctx, doc); err != nil {
			b.Fatalf("save failed: %v", err)
		}
	}
}

// BenchmarkLoad benchmarks reading the same vault back
func BenchmarkLoad(b *testing.B) {
	s, err := Open(filepath.Join(b.TempDir(), "bench.db"), zerolog.Nop())
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	doc := domain.NewDocument()
	for i := range 200 {
		doc.Folders = append(doc.Folders, domain.Folder{ID: fmt.Sprintf("f%d", i), Name: "x", ParentID: domain.RootID})
	}
	if err := s.Save(ctx, doc); err != nil {
		b.Fatalf("save failed: %v", err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := s.Load(ctx); err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
}
