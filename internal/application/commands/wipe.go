package commands

import (
	"context"

	"calcvault/internal/application"
)

// WipeCommand irreversibly erases the whole vault document.
// It asks for no confirmation.
type WipeCommand struct {
	vault *application.Vault
}

// NewWipeCommand creates a new WipeCommand
func NewWipeCommand(vault *application.Vault) *WipeCommand {
	return &WipeCommand{vault: vault}
}

// Execute runs the wipe command
func (c *WipeCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.vault.Wipe(ctx); err != nil {
		return nil, err
	}
	return &Result{Applied: true, Message: "Vault erased"}, nil
}
