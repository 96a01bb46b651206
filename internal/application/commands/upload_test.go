package commands

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// fakeSource returns its content once gate is closed (or immediately when
// gate is nil). before runs just before returning.
type fakeSource struct {
	name    string
	mime    string
	content []byte
	err     error
	gate    chan struct{}
	before  func()
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) ReadAll(ctx context.Context) (string, []byte, error) {
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return "", nil, ctx.Err()
		}
	}
	if s.before != nil {
		s.before()
	}
	return s.mime, s.content, s.err
}

func TestUploadCommand_Validate(t *testing.T) {
	cmd := &UploadCommand{}
	if err := cmd.Validate(); err == nil || !contains(err.Error(), "no files selected") {
		t.Errorf("expected no files error, got %v", err)
	}
}

func TestUploadCommand_StoresDataURLs(t *testing.T) {
	v, _ := newTestVault(t, sampleDocument())
	sources := []ports.UploadSource{
		&fakeSource{name: "cat.jpg", mime: "image/jpeg", content: []byte("meow")},
	}

	result, err := NewUploadCommand(v, &seqIDs{}, zerolog.Nop(), sources, "f3").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Applied || len(result.Stored) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	doc := mustLoad(t, v)
	file, ok := doc.FindFile(result.Stored[0].ID)
	if !ok {
		t.Fatalf("file not persisted")
	}
	if file.FolderID != "f3" || file.MimeType != "image/jpeg" || file.Name != "cat.jpg" {
		t.Errorf("unexpected file: %+v", file)
	}
	mime, content, err := domain.DecodeDataURL(file.Data)
	if err != nil {
		t.Fatalf("DecodeDataURL failed: %v", err)
	}
	if mime != "image/jpeg" || string(content) != "meow" {
		t.Errorf("payload = %s %q", mime, content)
	}
}

func TestUploadCommand_InterleavedCompletionsKeepEveryFile(t *testing.T) {
	v, store := newTestVault(t, sampleDocument())
	savesBefore := store.Saves()

	slowGate := make(chan struct{})
	slow := &fakeSource{name: "slow.mp4", mime: "video/mp4", content: []byte("slow"), gate: slowGate}
	fast := &fakeSource{name: "fast.mp3", mime: "audio/mpeg", content: []byte("fast")}

	cmd := NewUploadCommand(v, &seqIDs{}, zerolog.Nop(), []ports.UploadSource{slow, fast}, domain.RootID)

	var once sync.Once
	cmd.OnStored = func(f domain.File) {
		// The slow read only finishes after the fast one was saved
		if f.Name == "fast.mp3" {
			once.Do(func() { close(slowGate) })
		}
	}

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Stored) != 2 {
		t.Fatalf("expected 2 stored files, got %d", len(result.Stored))
	}
	if result.Stored[0].Name != "fast.mp3" || result.Stored[1].Name != "slow.mp4" {
		t.Errorf("unexpected completion order: %s, %s", result.Stored[0].Name, result.Stored[1].Name)
	}

	doc := mustLoad(t, v)
	if len(doc.Files) != 4 {
		t.Errorf("expected 4 files, got %d", len(doc.Files))
	}
	if got := store.Saves() - savesBefore; got != 2 {
		t.Errorf("expected one save per completion, got %d", got)
	}
}

func TestUploadCommand_SeesMutationsMadeDuringRead(t *testing.T) {
	v, _ := newTestVault(t, sampleDocument())

	src := &fakeSource{name: "late.txt", mime: "text/plain", content: []byte("x")}
	src.before = func() {
		// A folder is created while the file is still being read
		if _, err := NewCreateFolderCommand(v, &seqIDs{next: 100}, "Meanwhile", domain.RootID).Execute(context.Background()); err != nil {
			t.Errorf("create failed: %v", err)
		}
	}

	if _, err := NewUploadCommand(v, &seqIDs{}, zerolog.Nop(), []ports.UploadSource{src}, domain.RootID).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := mustLoad(t, v)
	if _, ok := doc.FindFolder("id-101"); !ok {
		t.Errorf("folder created during the read was lost")
	}
	if len(doc.Files) != 3 {
		t.Errorf("expected 3 files, got %d", len(doc.Files))
	}
}

func TestUploadCommand_TargetFolderDeletedFallsBackToRoot(t *testing.T) {
	v, _ := newTestVault(t, sampleDocument())

	src := &fakeSource{name: "song.mp3", mime: "audio/mpeg", content: []byte("x")}
	src.before = func() {
		if _, err := NewDeleteCommand(v, "f3").Execute(context.Background()); err != nil {
			t.Errorf("delete failed: %v", err)
		}
	}

	result, err := NewUploadCommand(v, &seqIDs{}, zerolog.Nop(), []ports.UploadSource{src}, "f3").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stored[0].FolderID != domain.RootID {
		t.Errorf("FolderID = %q, want root", result.Stored[0].FolderID)
	}
}

func TestUploadCommand_ReadFailureSkipsOnlyThatFile(t *testing.T) {
	v, _ := newTestVault(t, nil)
	sources := []ports.UploadSource{
		&fakeSource{name: "bad.bin", err: errors.New("permission denied")},
		&fakeSource{name: "good.txt", mime: "text/plain", content: []byte("ok")},
	}

	result, err := NewUploadCommand(v, &seqIDs{}, zerolog.Nop(), sources, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Stored) != 1 || len(result.Failed) != 1 || result.Failed[0] != "bad.bin" {
		t.Errorf("unexpected result: %+v", result)
	}
	if !contains(result.Message, "1 failed") {
		t.Errorf("unexpected message %q", result.Message)
	}
}
