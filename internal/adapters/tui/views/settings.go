package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/application"
	"calcvault/internal/application/commands"
	"calcvault/internal/ports"
)

// SettingsKeyMap defines key bindings for the lock settings
type SettingsKeyMap struct {
	Enable  key.Binding
	Disable key.Binding
	Back    key.Binding
}

var SettingsKeys = SettingsKeyMap{
	Enable: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "enable lock"),
	),
	Disable: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "disable lock"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

type lockStatusMsg struct {
	enabled   bool
	hasSecret bool
	err       error
}

type lockChangedMsg struct {
	result *commands.Result
	err    error
}

// SettingsModel turns the vault lock on and off
type SettingsModel struct {
	ViewState
	vault *application.Vault
	host  ports.Host

	enabled   bool
	hasSecret bool
	entering  bool
	secret    *InputField
}

// NewSettingsModel creates the lock settings view. host may be nil.
func NewSettingsModel(vault *application.Vault, host ports.Host) *SettingsModel {
	return &SettingsModel{
		vault:  vault,
		host:   host,
		secret: NewSecretField("Secret", "New secret"),
	}
}

// Init loads the current lock status
func (m *SettingsModel) Init() tea.Cmd {
	m.entering = false
	m.secret.Blur()
	m.ClearMessage()
	return m.loadStatus
}

func (m *SettingsModel) loadStatus() tea.Msg {
	doc, err := m.vault.Load(context.Background())
	if err != nil {
		return lockStatusMsg{err: err}
	}
	return lockStatusMsg{enabled: doc.IsLockEnabled, hasSecret: doc.Secret != ""}
}

// Enabled reports the lock status last loaded
func (m *SettingsModel) Enabled() bool {
	return m.enabled
}

// Entering reports whether the secret field is showing
func (m *SettingsModel) Entering() bool {
	return m.entering
}

// Update handles messages for the lock settings
func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case lockStatusMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.enabled = msg.enabled
		m.hasSecret = msg.hasSecret
		return m, nil

	case lockChangedMsg:
		m.ShowResult(msg.result, msg.err)
		return m, m.loadStatus

	case tea.KeyMsg:
		if m.entering {
			return m, m.handleSecretKey(msg)
		}

		switch {
		case key.Matches(msg, SettingsKeys.Back):
			return m, func() tea.Msg { return SwitchToPortalMsg{} }

		case key.Matches(msg, SettingsKeys.Enable):
			cmd := commands.NewEnableLockCommand(m.vault, m.host, "")
			if cmd.UsesBiometrics() {
				return m, m.apply(cmd.Execute)
			}
			m.entering = true
			m.ClearMessage()
			return m, m.secret.Reset()

		case key.Matches(msg, SettingsKeys.Disable):
			return m, m.apply(commands.NewDisableLockCommand(m.vault).Execute)
		}
	}
	return m, nil
}

func (m *SettingsModel) handleSecretKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, InputKeys.Cancel):
		m.entering = false
		m.secret.Blur()
		return nil

	case key.Matches(msg, InputKeys.Submit):
		secret := m.secret.Value()
		m.entering = false
		m.secret.Blur()
		return m.apply(commands.NewEnableLockCommand(m.vault, m.host, secret).Execute)
	}

	return m.secret.Update(msg)
}

func (m *SettingsModel) apply(execute func(ctx context.Context) (*commands.Result, error)) tea.Cmd {
	return func() tea.Msg {
		result, err := execute(context.Background())
		return lockChangedMsg{result: result, err: err}
	}
}

// View renders the lock settings
func (m *SettingsModel) View() string {
	vb := NewViewBuilder().Title("Lock")

	status := "off"
	if m.enabled {
		status = "on"
	}
	vb.Line(RenderLabelValue("Lock", status))

	method := "secret"
	if m.host != nil && m.host.IsBiometricAvailable() {
		method = "biometrics"
	}
	vb.Line(RenderLabelValue("Method", method))
	if !m.enabled && m.hasSecret {
		vb.Muted("The previous secret is still stored.")
	}
	vb.BlankLine()

	if m.entering {
		vb.Line(m.secret.View())
		vb.BlankLine()
		vb.Message(m.Message, m.MessageErr)
		vb.Help(promptHelp("save secret", "back")...)
		return vb.String()
	}

	vb.Message(m.Message, m.MessageErr)
	vb.Help(SettingsKeys.Enable, SettingsKeys.Disable, SettingsKeys.Back)
	return vb.String()
}
