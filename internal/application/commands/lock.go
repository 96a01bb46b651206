package commands

import (
	"context"
	"fmt"

	"calcvault/internal/application"
	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// EnableLockCommand turns the vault lock on. With a biometric-capable host it
// asks the host for access; otherwise it stores Secret as the unlock secret.
type EnableLockCommand struct {
	vault  *application.Vault
	host   ports.Host
	Secret string
}

// NewEnableLockCommand creates a new EnableLockCommand. host may be nil.
func NewEnableLockCommand(vault *application.Vault, host ports.Host, secret string) *EnableLockCommand {
	return &EnableLockCommand{
		vault:  vault,
		host:   host,
		Secret: secret,
	}
}

// UsesBiometrics reports whether enabling will go through the host
func (c *EnableLockCommand) UsesBiometrics() bool {
	return c.host != nil && c.host.IsBiometricAvailable()
}

// Execute runs the enable lock command
func (c *EnableLockCommand) Execute(ctx context.Context) (*Result, error) {
	if c.UsesBiometrics() {
		granted, err := c.host.RequestAccess(ctx, "Protect the vault")
		if err != nil {
			return nil, fmt.Errorf("failed to request biometric access: %w", err)
		}
		if !granted {
			return &Result{Applied: false, Message: "Biometric access was not granted"}, nil
		}
		return c.apply(ctx, func(doc *domain.Document) {
			doc.IsLockEnabled = true
		})
	}

	if err := application.ValidateRequired("secret", c.Secret); err != nil {
		return skipped(err), nil
	}
	return c.apply(ctx, func(doc *domain.Document) {
		doc.IsLockEnabled = true
		doc.Secret = c.Secret
	})
}

func (c *EnableLockCommand) apply(ctx context.Context, fn func(doc *domain.Document)) (*Result, error) {
	_, _, err := c.vault.Update(ctx, func(doc *domain.Document) bool {
		fn(doc)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enable lock: %w", err)
	}
	return &Result{Applied: true, Message: "Lock enabled"}, nil
}

// DisableLockCommand turns the vault lock off. The stored secret is kept.
type DisableLockCommand struct {
	vault *application.Vault
}

// NewDisableLockCommand creates a new DisableLockCommand
func NewDisableLockCommand(vault *application.Vault) *DisableLockCommand {
	return &DisableLockCommand{vault: vault}
}

// Execute runs the disable lock command
func (c *DisableLockCommand) Execute(ctx context.Context) (*Result, error) {
	_, applied, err := c.vault.Update(ctx, func(doc *domain.Document) bool {
		if !doc.IsLockEnabled {
			return false
		}
		doc.IsLockEnabled = false
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to disable lock: %w", err)
	}
	if !applied {
		return &Result{Applied: false, Message: "Lock is already disabled"}, nil
	}
	return &Result{Applied: true, Message: "Lock disabled"}, nil
}
