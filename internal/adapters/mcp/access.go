package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"calcvault/internal/application"
	"calcvault/internal/application/auth"
)

func secretParam() mcp.ToolOption {
	return mcp.WithString("secret",
		mcp.Description("Vault secret. Required only when the lock is enabled."),
	)
}

// unlock runs the request through a fresh lock gate. Every call is its own
// session; nothing stays unlocked between calls.
func unlock(ctx context.Context, vault *application.Vault, log zerolog.Logger, req mcp.CallToolRequest) error {
	doc, err := vault.Load(ctx)
	if err != nil {
		return err
	}

	gate := auth.NewGate(nil, log)
	if gate.Begin(ctx, doc) == auth.Unlocked {
		return nil
	}
	if gate.SubmitSecret(doc, req.GetString("secret", "")) == auth.Unlocked {
		return nil
	}
	return fmt.Errorf("%w: pass the vault secret", application.ErrLocked)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
