package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/application/auth"
	"calcvault/internal/application/portal"
)

// LockModel asks for the secret while the portal is challenging
type LockModel struct {
	ViewState
	ctrl   *portal.Controller
	secret *InputField
}

// NewLockModel creates the lock overlay
func NewLockModel(ctrl *portal.Controller) *LockModel {
	return &LockModel{
		ctrl:   ctrl,
		secret: NewSecretField("Enter secret", "Secret"),
	}
}

// Reset clears the secret field and focuses it
func (m *LockModel) Reset() {
	m.secret.Reset()
	m.ClearMessage()
}

// Init initializes the lock overlay
func (m *LockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the lock overlay
func (m *LockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case SecretCheckedMsg:
		switch {
		case msg.Err != nil:
			m.SetMessage(msg.Err.Error(), true)
		case msg.State == auth.Unlocked:
			m.secret.SetValue("")
			return m, func() tea.Msg { return SwitchToPortalMsg{} }
		default:
			m.secret.SetValue("")
			m.SetMessage("Wrong secret", true)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, InputKeys.Cancel):
			m.ctrl.Close()
			return m, func() tea.Msg { return SwitchToCalculatorMsg{} }
		case key.Matches(msg, InputKeys.Submit):
			return m, m.submit(m.secret.Value())
		}
	}

	return m, m.secret.Update(msg)
}

func (m *LockModel) submit(value string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.ctrl.SubmitSecret(context.Background(), value)
		return SecretCheckedMsg{State: state, Err: err}
	}
}

// View renders the lock overlay
func (m *LockModel) View() string {
	return NewViewBuilder().
		Title("Locked").
		Line(m.secret.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(promptHelp("unlock", "back")...).
		String()
}
