package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines the answers to a yes/no question
type ConfirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// Confirm holds a destructive action until the user answers yes
type Confirm struct {
	question string
	action   tea.Cmd
}

// Ask shows question and keeps action until it is answered
func (c *Confirm) Ask(question string, action tea.Cmd) {
	c.question = question
	c.action = action
}

// Pending reports whether a question is waiting for an answer
func (c *Confirm) Pending() bool {
	return c.action != nil
}

// Clear drops the question without running its action
func (c *Confirm) Clear() {
	c.question = ""
	c.action = nil
}

// HandleKey answers the pending question. Yes returns the held action,
// No returns nil. Any other key is swallowed while a question is pending.
func (c *Confirm) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ConfirmKeys.Yes):
		action := c.action
		c.Clear()
		return action
	case key.Matches(msg, ConfirmKeys.No):
		c.Clear()
	}
	return nil
}

// View renders the question with its answers
func (c *Confirm) View() string {
	if !c.Pending() {
		return ""
	}
	return styles.ErrorMsg.Render(c.question) + "  " + RenderHelpLine(ConfirmKeys.Yes, ConfirmKeys.No)
}

// RenderTileInfo renders the kind and name of the tile an action applies to
func RenderTileInfo(tile *Tile) string {
	if tile == nil {
		return ""
	}
	kind := "File"
	if tile.IsFolder {
		kind = "Folder"
	}
	return styles.InputLabel.Render(kind+":") + " " + tile.icon() + " " + tile.Name
}
