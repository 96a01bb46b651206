package memory

import (
	"context"
	"testing"

	"calcvault/internal/domain"
)

func TestStore_DefaultsWhenEmptyOrCorrupt(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !doc.Equal(domain.NewDocument()) {
		t.Errorf("expected default document, got %+v", doc)
	}

	s.SetRaw([]byte("{not json"))
	doc, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !doc.Equal(domain.NewDocument()) {
		t.Errorf("expected default document for corrupt blob, got %+v", doc)
	}
}

func TestStore_RoundTripAndWipe(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	doc := domain.NewDocument()
	doc.Folders = append(doc.Folders, domain.Folder{ID: "d1", Name: "Docs", ParentID: domain.RootID})
	doc.IsLockEnabled = true
	doc.Secret = "4321"

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.Equal(doc) {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}
	got, _ = s.Load(ctx)
	if !got.Equal(domain.NewDocument()) {
		t.Errorf("expected default document after wipe, got %+v", got)
	}
}
