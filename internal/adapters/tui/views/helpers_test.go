package views

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"calcvault/internal/adapters/memory"
	"calcvault/internal/application"
	"calcvault/internal/application/auth"
	"calcvault/internal/application/portal"
	"calcvault/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

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

// fakeHold records presses; set fired to simulate a hold that outlasted its
// duration before the release
type fakeHold struct {
	presses  int
	cancels  int
	pressing bool
	fired    bool
}

func (h *fakeHold) Press() {
	h.presses++
	h.pressing = true
}

func (h *fakeHold) Release() bool {
	fired := h.fired
	h.pressing = false
	h.fired = false
	return fired
}

func (h *fakeHold) Cancel() {
	h.cancels++
	h.pressing = false
	h.fired = false
}

type fakeOpener struct {
	urls  []string
	files []string
}

func (o *fakeOpener) OpenURL(url string) error {
	o.urls = append(o.urls, url)
	return nil
}

func (o *fakeOpener) OpenFile(path string) error {
	o.files = append(o.files, path)
	return nil
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
			{ID: "a", Name: "beach.png", MimeType: "image/png", Data: domain.EncodeDataURL("image/png", []byte{0x89, 'P', 'N', 'G'}), FolderID: "f1"},
			{ID: "b", Name: "notes.txt", MimeType: "text/plain", Data: domain.EncodeDataURL("text/plain", []byte("hello")), FolderID: domain.RootID},
		},
	}
}

// newUnlockedPortal returns an open, unlocked portal over doc
func newUnlockedPortal(t *testing.T, doc *domain.Document) (*portal.Controller, *application.Vault) {
	t.Helper()
	store := memory.NewStore()
	if doc != nil {
		if err := store.Save(context.Background(), doc); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	vault := application.NewVault(store, zerolog.Nop())
	ctrl := portal.NewController(vault, auth.NewGate(nil, zerolog.Nop()), &seqIDs{}, zerolog.Nop())

	state, err := ctrl.Open(context.Background())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if state != auth.Unlocked {
		t.Fatalf("Open = %v, want unlocked", state)
	}
	return ctrl, vault
}

func mustLoad(t *testing.T, v *application.Vault) *domain.Document {
	t.Helper()
	doc, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc
}

// runCmd executes cmd and every command batched inside it, returning the
// produced messages
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}
