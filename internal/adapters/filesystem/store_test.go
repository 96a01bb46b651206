package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"calcvault/internal/domain"
)

func TestStore_LoadMissingReturnsDefault(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "vault"), zerolog.Nop())

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !doc.Equal(domain.NewDocument()) {
		t.Errorf("expected default document, got %+v", doc)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "vault")
	s := NewStore(dir, zerolog.Nop())

	doc := &domain.Document{
		Folders: []domain.Folder{
			{ID: "f1", Name: "Photos", ParentID: domain.RootID},
			{ID: "f2", Name: "Trips", ParentID: "f1"},
		},
		Files: []domain.File{
			{ID: "a", Name: "a.mp3", MimeType: "audio/mpeg", Data: domain.EncodeDataURL("audio/mpeg", []byte("id3")), FolderID: "f2"},
		},
		IsLockEnabled: true,
		Secret:        "9999",
	}
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := NewStore(dir, zerolog.Nop()).Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.Equal(doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, doc)
	}

	// No temp files are left behind
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != domain.StorageKey+".json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected directory content %v", names)
	}
}

func TestStore_CorruptFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, zerolog.Nop())
	if err := os.WriteFile(s.Path(), []byte(`{"files": 12`), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !doc.Equal(domain.NewDocument()) {
		t.Errorf("expected default document, got %+v", doc)
	}
}

func TestStore_LoadNormalizesLegacyShape(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, zerolog.Nop())
	raw := `{"files":[{"id":"x","name":"x.txt","type":"text/plain","data":"data:text/plain;base64,eA=="}],"folders":null}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Folders == nil {
		t.Errorf("expected folders to be an empty list")
	}
	if len(doc.Files) != 1 || doc.Files[0].FolderID != domain.RootID {
		t.Errorf("expected file in root, got %+v", doc.Files)
	}
}

func TestStore_Wipe(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir(), zerolog.Nop())

	if err := s.Save(ctx, &domain.Document{Secret: "x"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Errorf("expected document file removed")
	}
	// Wiping twice is fine
	if err := s.Wipe(ctx); err != nil {
		t.Errorf("second Wipe failed: %v", err)
	}
}

func TestNewStore_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	s := NewStore("~/vault", zerolog.Nop())
	want := filepath.Join(home, "vault", domain.StorageKey+".json")
	if s.Path() != want {
		t.Errorf("Path = %q, want %q", s.Path(), want)
	}
}
