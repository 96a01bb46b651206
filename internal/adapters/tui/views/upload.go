package views

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcvault/internal/adapters/filesystem"
	"calcvault/internal/adapters/tui/styles"
	"calcvault/internal/application/portal"
)

// UploadKeyMap defines key bindings for the upload picker, on top of the
// file picker's own navigation keys
type UploadKeyMap struct {
	Toggle key.Binding
	Send   key.Binding
	Cancel key.Binding
}

var UploadKeys = UploadKeyMap{
	Toggle: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Send: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "upload"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// UploadModel lets the user pick any number of local files and uploads them
// into the active folder as one batch
type UploadModel struct {
	ViewState
	ctrl     *portal.Controller
	picker   filepicker.Model
	lastDir  string
	selected []string
}

// NewUploadModel creates the upload picker
func NewUploadModel(ctrl *portal.Controller) *UploadModel {
	return &UploadModel{ctrl: ctrl}
}

// Open prepares a fresh picker in the last used directory, else the user's home
func (m *UploadModel) Open() tea.Cmd {
	fp := filepicker.New()
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = false
	fp.Height = m.pickerHeight()
	fp.Cursor = "›"
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "up"),
	)
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(styles.PortalAccent)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(styles.PortalAccent).Bold(true)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(styles.FolderColor)

	startDir := strings.TrimSpace(m.lastDir)
	if startDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			startDir = home
		}
	}
	if startDir == "" {
		startDir = "."
	}
	fp.CurrentDirectory = startDir

	m.picker = fp
	m.selected = nil
	m.ClearMessage()
	return m.picker.Init()
}

func (m *UploadModel) pickerHeight() int {
	if m.Height <= 0 {
		return 12
	}
	return min(max(m.Height-10, 6), 20)
}

// Selected returns the queued paths
func (m *UploadModel) Selected() []string {
	return m.selected
}

// Toggle adds a path to the batch or removes it when already queued
func (m *UploadModel) Toggle(path string) {
	if i := slices.Index(m.selected, path); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
		return
	}
	m.selected = append(m.selected, path)
}

// Init initializes the picker
func (m *UploadModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the upload picker
func (m *UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.picker.Height = m.pickerHeight()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, UploadKeys.Cancel):
			return m, func() tea.Msg { return SwitchToPortalMsg{} }
		case key.Matches(msg, UploadKeys.Send):
			return m, m.Send()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.lastDir = filepath.Dir(path)
		m.Toggle(path)
	}
	return m, cmd
}

// Send uploads the queued files. The portal shows again right away; each file
// lands in the vault as soon as its own read completes.
func (m *UploadModel) Send() tea.Cmd {
	if len(m.selected) == 0 {
		m.SetMessage("No files selected", true)
		return nil
	}

	sources := filesystem.LocalFiles(m.selected)
	m.selected = nil

	upload := func() tea.Msg {
		result, err := m.ctrl.Upload(context.Background(), sources, nil)
		return UploadDoneMsg{Result: result, Err: err}
	}
	return tea.Batch(func() tea.Msg { return SwitchToPortalMsg{} }, upload)
}

// View renders the upload picker
func (m *UploadModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Upload"))
	b.WriteString("\n\n")
	b.WriteString(RenderMuted(m.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n\n")

	if len(m.selected) > 0 {
		b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Selected (%d):", len(m.selected))))
		b.WriteString("\n")
		for _, p := range m.selected {
			b.WriteString("  " + filepath.Base(p))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(UploadKeys.Toggle, UploadKeys.Send, UploadKeys.Cancel))
	return styles.App.Render(b.String())
}
