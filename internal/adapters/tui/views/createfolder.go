package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/application/portal"
)

// CreateFolderModel prompts for the name of a new folder in the active folder
type CreateFolderModel struct {
	ViewState
	ctrl *portal.Controller
	name *InputField
}

// NewCreateFolderModel creates the folder name prompt
func NewCreateFolderModel(ctrl *portal.Controller) *CreateFolderModel {
	return &CreateFolderModel{
		ctrl: ctrl,
		name: NewInputField("Folder name", "e.g. Holidays", 64),
	}
}

// Reset clears the prompt
func (m *CreateFolderModel) Reset() {
	m.name.Reset()
	m.ClearMessage()
}

// SetValue fills the name field
func (m *CreateFolderModel) SetValue(name string) {
	m.name.SetValue(name)
}

// Init initializes the prompt
func (m *CreateFolderModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt
func (m *CreateFolderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, InputKeys.Cancel):
			return m, func() tea.Msg { return SwitchToPortalMsg{} }
		case key.Matches(msg, InputKeys.Submit):
			return m, m.create(m.name.Value())
		}
	}

	return m, m.name.Update(msg)
}

func (m *CreateFolderModel) create(name string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.ctrl.CreateFolder(context.Background(), name)
		if err != nil {
			return ActionDoneMsg{Err: err}
		}
		return ActionDoneMsg{Result: result.Result}
	}
}

// View renders the prompt
func (m *CreateFolderModel) View() string {
	return NewViewBuilder().
		Title("New Folder").
		Line(m.name.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(promptHelp("create", "cancel")...).
		String()
}
