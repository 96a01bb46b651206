package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/adapters/tui/styles"
	"calcvault/internal/application/commands"
	"calcvault/internal/application/portal"
)

// PickerKeyMap defines key bindings for the folder picker
type PickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "right", "l"),
		key.WithHelp("→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "left", "h"),
		key.WithHelp("←", "prev page"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "move here"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

const pickerPageSize = 10

type foldersLoadedMsg struct {
	options []commands.FolderOption
	err     error
}

// PickerModel lists every folder, Root first, as destinations for a file
type PickerModel struct {
	ViewState
	ctrl      *portal.Controller
	file      Tile
	options   []commands.FolderOption
	paginator *Paginator
}

// NewPickerModel creates a folder picker
func NewPickerModel(ctrl *portal.Controller) *PickerModel {
	return &PickerModel{
		ctrl:      ctrl,
		paginator: NewPaginator(pickerPageSize),
	}
}

// SetFile sets the file being moved and clears the previous listing
func (m *PickerModel) SetFile(file Tile) {
	m.file = file
	m.options = nil
	m.paginator.Reset()
	m.ClearMessage()
}

// Init loads the destinations
func (m *PickerModel) Init() tea.Cmd {
	return func() tea.Msg {
		options, err := m.ctrl.Folders(context.Background())
		return foldersLoadedMsg{options: options, err: err}
	}
}

// Options returns the listed destinations
func (m *PickerModel) Options() []commands.FolderOption {
	return m.options
}

// Update handles messages for the folder picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case foldersLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.options = msg.options
		m.paginator.SetTotal(len(m.options))
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, ok := m.OptionAt(msg.Y); ok {
			m.paginator.SetCursor(idx)
			return m, m.move(m.options[idx])
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, func() tea.Msg { return SwitchToPortalMsg{} }
		case key.Matches(msg, PickerKeys.Up):
			m.paginator.CursorUp()
		case key.Matches(msg, PickerKeys.Down):
			m.paginator.CursorDown()
		case key.Matches(msg, PickerKeys.NextPage):
			m.paginator.NextPage()
		case key.Matches(msg, PickerKeys.PrevPage):
			m.paginator.PrevPage()
		case key.Matches(msg, PickerKeys.Submit):
			if len(m.options) == 0 {
				return m, nil
			}
			return m, m.move(m.options[m.paginator.Cursor()])
		}
	}
	return m, nil
}

func (m *PickerModel) move(dest commands.FolderOption) tea.Cmd {
	fileID := m.file.ID
	return func() tea.Msg {
		result, err := m.ctrl.Move(context.Background(), fileID, dest.ID)
		if err != nil {
			return ActionDoneMsg{Err: err}
		}
		return ActionDoneMsg{Result: result.Result}
	}
}

func (m *PickerModel) header() string {
	return RenderTitle("Move to") + "\n\n" +
		RenderLabelValue("File", m.file.Name) + "\n\n"
}

// OptionAt returns the absolute index of the destination on screen row y
func (m *PickerModel) OptionAt(y int) (int, bool) {
	row := y - originY - strings.Count(m.header(), "\n")
	start, end := m.paginator.VisibleRange()
	if row < 0 || start+row >= end {
		return 0, false
	}
	return start + row, true
}

// View renders the folder picker
func (m *PickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.header())

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		label := m.options[i].Label
		if i == m.paginator.Cursor() {
			b.WriteString(styles.NodeSelected.Render("> " + label))
		} else {
			b.WriteString(styles.NodeItem.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.paginator.TotalPages() > 1 {
		b.WriteString(RenderMuted(m.paginator.View()))
		b.WriteString("\n\n")
	}
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(PickerKeys.Submit, PickerKeys.NextPage, PickerKeys.PrevPage, PickerKeys.Cancel))
	return styles.App.Render(b.String())
}
