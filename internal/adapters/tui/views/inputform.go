package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/adapters/tui/styles"
)

// InputKeyMap defines key bindings for single-field prompts
type InputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// InputKeys are the prompt bindings shared by the name and secret fields
var InputKeys = InputKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const secretLimit = 64

// InputField is a labelled single-line text input
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a plain text field
func NewInputField(label, placeholder string, charLimit int) *InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return &InputField{Label: label, Input: input}
}

// NewSecretField creates a field that masks what is typed
func NewSecretField(label, placeholder string) *InputField {
	f := NewInputField(label, placeholder, secretLimit)
	f.Input.EchoMode = textinput.EchoPassword
	f.Input.EchoCharacter = '•'
	return f
}

// Reset clears the field and focuses it
func (f *InputField) Reset() tea.Cmd {
	f.Input.SetValue("")
	return f.Input.Focus()
}

// Blur clears the field and drops focus
func (f *InputField) Blur() {
	f.Input.SetValue("")
	f.Input.Blur()
}

// Value returns the text with surrounding blanks removed. Secrets are
// returned as typed.
func (f *InputField) Value() string {
	if f.Input.EchoMode == textinput.EchoPassword {
		return f.Input.Value()
	}
	return strings.TrimSpace(f.Input.Value())
}

// SetValue replaces the text
func (f *InputField) SetValue(value string) {
	f.Input.SetValue(value)
}

// Update forwards a message to the text input
func (f *InputField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// View renders the label above the input box
func (f *InputField) View() string {
	box := styles.InputField
	if f.Input.Focused() {
		box = styles.InputFocused
	}
	return styles.InputLabel.Render(f.Label) + "\n" + box.Render(f.Input.View())
}

// promptHelp returns the prompt bindings with view-specific descriptions
func promptHelp(submit, cancel string) []key.Binding {
	s := InputKeys.Submit
	s.SetHelp("enter", submit)
	c := InputKeys.Cancel
	c.SetHelp("esc", cancel)
	return []key.Binding{s, c}
}
