package views

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"calcvault/internal/application/portal"
	"calcvault/internal/domain"
)

// loadPortal builds a sized portal view and runs its first load
func loadPortal(t *testing.T, ctrl *portal.Controller) (*PortalModel, *fakeHold, *fakeOpener) {
	t.Helper()
	hold, opener := &fakeHold{}, &fakeOpener{}
	m := NewPortalModel(ctrl, opener, hold, t.TempDir(), zerolog.Nop())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	deliver(m, runCmd(m.Reload()))
	return m, hold, opener
}

// deliver feeds messages back into the model, dropping follow-up commands
func deliver(m tea.Model, msgs []tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func tileNames(tiles []Tile) []string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.Name
	}
	return names
}

func TestTilesOf(t *testing.T) {
	view := domain.BuildView(sampleDocument(), domain.RootID)
	tiles := TilesOf(view)

	want := []struct {
		name     string
		isFolder bool
		kind     domain.MediaKind
	}{
		{"Photos", true, domain.MediaOther},
		{"Music", true, domain.MediaOther},
		{"notes.txt", false, domain.MediaOther},
	}
	if len(tiles) != len(want) {
		t.Fatalf("TilesOf = %v, want %d tiles", tileNames(tiles), len(want))
	}
	for i, w := range want {
		if tiles[i].Name != w.name || tiles[i].IsFolder != w.isFolder || tiles[i].Kind != w.kind {
			t.Errorf("tile %d = %+v, want %+v", i, tiles[i], w)
		}
	}

	if TilesOf(nil) != nil {
		t.Error("TilesOf(nil) should be nil")
	}
}

func TestPortal_EmptyState(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, nil)
	m, _, _ := loadPortal(t, ctrl)

	if m.Loading() {
		t.Fatal("expected load to finish")
	}
	if !contains(m.View(), "Empty here") {
		t.Errorf("empty folder should show the empty state:\n%s", m.View())
	}
}

func TestPortal_SpinnerWhileLoading(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, nil)
	m := NewPortalModel(ctrl, &fakeOpener{}, &fakeHold{}, "", zerolog.Nop())

	m.Reload()
	if !m.Loading() {
		t.Fatal("expected loading after Reload")
	}
	if !contains(m.View(), "Loading") {
		t.Errorf("first load should show the spinner:\n%s", m.View())
	}
}

func TestPortal_TileAt(t *testing.T) {
	doc := &domain.Document{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		doc.Folders = append(doc.Folders, domain.Folder{ID: name, Name: name, ParentID: domain.RootID})
	}
	ctrl, _ := newUnlockedPortal(t, doc)
	m, _, _ := loadPortal(t, ctrl)

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first tile", 2, 3, 0, true},
		{"first tile bottom right", 17, 6, 0, true},
		{"gap", 18, 3, 0, false},
		{"second tile", 19, 3, 1, true},
		{"fourth tile", 53, 4, 3, true},
		{"fifth column does not fit", 70, 4, 0, false},
		{"second row", 2, 7, 4, true},
		{"second row second tile", 19, 8, 5, true},
		{"past the last tile", 36, 7, 0, false},
		{"breadcrumb row", 2, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.TileAt(tt.x, tt.y)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("TileAt(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPortal_ClickFolderNavigates(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, sampleDocument())
	m, hold, _ := loadPortal(t, ctrl)

	m.Update(mouse(tea.MouseActionPress, 3, 4))
	_, cmd := m.Update(mouse(tea.MouseActionRelease, 3, 4))
	deliver(m, runCmd(cmd))

	if hold.presses != 1 {
		t.Errorf("hold presses = %d, want 1", hold.presses)
	}
	if ctrl.ActiveFolder() != "f1" {
		t.Fatalf("ActiveFolder = %q, want f1", ctrl.ActiveFolder())
	}
	got := tileNames(m.Tiles())
	if len(got) != 2 || got[0] != "2024" || got[1] != "beach.png" {
		t.Errorf("tiles = %v, want [2024 beach.png]", got)
	}
}

func TestPortal_HoldOpensContextMenu(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, sampleDocument())
	m, hold, _ := loadPortal(t, ctrl)

	// notes.txt is the third tile
	m.Update(mouse(tea.MouseActionPress, 37, 4))
	_, cmd := m.Update(ItemHoldMsg{})

	msg, ok := findMsg[SwitchToMenuMsg](runCmd(cmd))
	if !ok || msg.Item == nil {
		t.Fatal("expected SwitchToMenuMsg with the held tile")
	}
	if msg.Item.ID != "b" {
		t.Errorf("menu item = %q, want b", msg.Item.ID)
	}
	if ctrl.Selected() != "b" {
		t.Errorf("Selected = %q, want b", ctrl.Selected())
	}

	// The release that ends the hold must not open the file
	hold.fired = true
	_, cmd = m.Update(mouse(tea.MouseActionRelease, 37, 4))
	if cmd != nil {
		t.Error("release after a hold should do nothing")
	}
}

func TestPortal_HoldFollowsTileAcrossReload(t *testing.T) {
	tests := []struct {
		name     string
		change   func(ctrl *portal.Controller) error
		wantMenu bool
	}{
		{
			name: "new folder shifts the held file",
			change: func(ctrl *portal.Controller) error {
				_, err := ctrl.CreateFolder(context.Background(), "Trip")
				return err
			},
			wantMenu: true,
		},
		{
			name: "held file deleted",
			change: func(ctrl *portal.Controller) error {
				_, err := ctrl.Delete(context.Background(), "b")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _ := newUnlockedPortal(t, sampleDocument())
			m, _, _ := loadPortal(t, ctrl)

			// notes.txt is the third tile
			m.Update(mouse(tea.MouseActionPress, 37, 4))
			if err := tt.change(ctrl); err != nil {
				t.Fatal(err)
			}
			deliver(m, runCmd(m.Reload()))

			_, cmd := m.Update(ItemHoldMsg{})
			msg, ok := findMsg[SwitchToMenuMsg](runCmd(cmd))
			if ok != tt.wantMenu {
				t.Fatalf("menu opened = %v, want %v", ok, tt.wantMenu)
			}
			if ok && msg.Item.ID != "b" {
				t.Errorf("menu item = %q, want b", msg.Item.ID)
			}
		})
	}
}

func TestPortal_HoldWithoutPressIgnored(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, sampleDocument())
	m, _, _ := loadPortal(t, ctrl)

	if _, cmd := m.Update(ItemHoldMsg{}); cmd != nil {
		t.Error("a stale hold fire should be ignored")
	}
}

func TestPortal_OpenFileExportsAndOpens(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, sampleDocument())
	m, _, opener := loadPortal(t, ctrl)

	m.cursor = 2
	_, cmd := m.Update(keyPress("enter"))
	msg, ok := findMsg[ActionDoneMsg](runCmd(cmd))
	if !ok {
		t.Fatal("expected ActionDoneMsg")
	}
	if msg.Err != nil || !msg.Result.Applied {
		t.Fatalf("open failed: %+v", msg)
	}
	if len(opener.files) != 1 {
		t.Fatalf("opened %d files, want 1", len(opener.files))
	}
}

func TestPortal_CrumbAt(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, sampleDocument())
	ctrl.NavigateTo("f2")
	m, _, _ := loadPortal(t, ctrl)

	// "Portal / Photos / 2024"
	tests := []struct {
		name   string
		x      int
		want   string
		wantOK bool
	}{
		{"root", 3, domain.RootID, true},
		{"separator", 9, "", false},
		{"parent", 12, "f1", true},
		{"current", 21, "f2", true},
		{"past the end", 40, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.CrumbAt(tt.x, 1)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CrumbAt(%d) = %q, %v; want %q, %v", tt.x, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := m.CrumbAt(3, 2); ok {
		t.Error("only the breadcrumb row is clickable")
	}
}

func TestPortal_KeyboardNavigation(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, sampleDocument())
	m, _, _ := loadPortal(t, ctrl)

	m.Update(keyPress("l"))
	m.Update(keyPress("l"))
	m.Update(keyPress("l")) // stays on the last tile
	if m.Cursor() != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor())
	}

	m.Update(keyPress("h"))
	m.Update(keyPress("h"))
	_, cmd := m.Update(keyPress("enter"))
	deliver(m, runCmd(cmd))
	if ctrl.ActiveFolder() != "f1" {
		t.Fatalf("ActiveFolder = %q, want f1", ctrl.ActiveFolder())
	}

	_, cmd = m.Update(keyPress("backspace"))
	deliver(m, runCmd(cmd))
	if ctrl.ActiveFolder() != domain.RootID {
		t.Errorf("ActiveFolder after parent = %q, want root", ctrl.ActiveFolder())
	}
}

func TestPortal_CloseReturnsToCalculator(t *testing.T) {
	ctrl, _ := newUnlockedPortal(t, sampleDocument())
	m, _, _ := loadPortal(t, ctrl)

	_, cmd := m.Update(keyPress("esc"))
	if _, ok := findMsg[SwitchToCalculatorMsg](runCmd(cmd)); !ok {
		t.Error("expected SwitchToCalculatorMsg")
	}
	if ctrl.IsOpen() {
		t.Error("portal should be closed")
	}
}
