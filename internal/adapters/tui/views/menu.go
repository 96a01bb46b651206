package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/adapters/tui/styles"
	"calcvault/internal/application/portal"
)

// MenuKeyMap defines key bindings for the context menu
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	New    key.Binding
	Move   key.Binding
	Cancel key.Binding
}

var MenuKeys = MenuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new folder"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

type menuAction int

const (
	menuDelete menuAction = iota
	menuCreateFolder
	menuMove
	menuCancel
)

type menuOption struct {
	label  string
	action menuAction
}

// MenuModel is the context menu shown after a long press on a tile
type MenuModel struct {
	ViewState
	ctrl    *portal.Controller
	item    *Tile
	options []menuOption
	cursor  int
	confirm Confirm
}

// NewMenuModel creates a context menu
func NewMenuModel(ctrl *portal.Controller) *MenuModel {
	return &MenuModel{ctrl: ctrl}
}

// SetItem prepares the menu for a tile. Move is offered for files only;
// without a tile only folder creation remains.
func (m *MenuModel) SetItem(item *Tile) {
	m.item = item
	m.cursor = 0
	m.confirm.Clear()
	m.ClearMessage()

	m.options = m.options[:0]
	if item != nil {
		m.options = append(m.options, menuOption{"Delete", menuDelete})
	}
	m.options = append(m.options, menuOption{"Create folder", menuCreateFolder})
	if item != nil && !item.IsFolder {
		m.options = append(m.options, menuOption{"Move to...", menuMove})
	}
	m.options = append(m.options, menuOption{"Cancel", menuCancel})
}

// Options returns the labels of the offered actions
func (m *MenuModel) Options() []string {
	labels := make([]string, len(m.options))
	for i, o := range m.options {
		labels[i] = o.label
	}
	return labels
}

// Confirming reports whether the delete prompt is showing
func (m *MenuModel) Confirming() bool {
	return m.confirm.Pending()
}

// Init initializes the menu
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		if m.confirm.Pending() || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, ok := m.OptionAt(msg.Y); ok {
			m.cursor = idx
			return m, m.choose(m.options[idx].action)
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Pending() {
			return m, m.confirm.HandleKey(msg)
		}

		switch {
		case key.Matches(msg, MenuKeys.Cancel):
			return m, m.choose(menuCancel)
		case key.Matches(msg, MenuKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, MenuKeys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case key.Matches(msg, MenuKeys.Select):
			return m, m.choose(m.options[m.cursor].action)
		case key.Matches(msg, MenuKeys.Delete):
			return m, m.choose(menuDelete)
		case key.Matches(msg, MenuKeys.New):
			return m, m.choose(menuCreateFolder)
		case key.Matches(msg, MenuKeys.Move):
			return m, m.choose(menuMove)
		}
	}
	return m, nil
}

func (m *MenuModel) choose(action menuAction) tea.Cmd {
	switch action {
	case menuDelete:
		if m.item != nil {
			m.confirm.Ask("Delete "+m.item.Name+"?", m.deleteCmd(m.item.ID))
		}
		return nil
	case menuCreateFolder:
		return func() tea.Msg { return SwitchToCreateFolderMsg{} }
	case menuMove:
		if m.item == nil || m.item.IsFolder {
			return nil
		}
		file := *m.item
		return func() tea.Msg { return SwitchToPickerMsg{File: file} }
	default:
		return func() tea.Msg { return SwitchToPortalMsg{} }
	}
}

func (m *MenuModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.ctrl.Delete(context.Background(), id)
		if err != nil {
			return ActionDoneMsg{Err: err}
		}
		return ActionDoneMsg{Result: result.Result}
	}
}

func (m *MenuModel) header() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Actions"))
	b.WriteString("\n\n")
	if m.item != nil {
		b.WriteString(RenderTileInfo(m.item))
		b.WriteString("\n\n")
	}
	return b.String()
}

// OptionAt returns the option on screen row y
func (m *MenuModel) OptionAt(y int) (int, bool) {
	idx := y - originY - strings.Count(m.header(), "\n")
	if idx < 0 || idx >= len(m.options) {
		return 0, false
	}
	return idx, true
}

// View renders the menu
func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString(m.header())

	for i, o := range m.options {
		if i == m.cursor && !m.confirm.Pending() {
			b.WriteString(styles.NodeSelected.Render("> " + o.label))
		} else {
			b.WriteString(styles.NodeItem.Render("  " + o.label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.confirm.Pending() {
		b.WriteString(m.confirm.View())
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(MenuKeys.Select, MenuKeys.Delete, MenuKeys.New, MenuKeys.Move, MenuKeys.Cancel))
	return styles.App.Render(b.String())
}
