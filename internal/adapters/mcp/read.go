package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"calcvault/internal/application"
	"calcvault/internal/application/commands"
	"calcvault/internal/domain"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, vault *application.Vault, log zerolog.Logger) {
	s.AddTool(listTool(), listHandler(vault, log))
	s.AddTool(breadcrumbTool(), breadcrumbHandler(vault, log))
	s.AddTool(treeTool(), treeHandler(vault, log))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the folders and files directly inside a folder. Omit folder_id to list the root."),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID to list. Omit for the root."),
		),
		secretParam(),
	)
}

func listHandler(vault *application.Vault, log zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := unlock(ctx, vault, log, req); err != nil {
			return toolError(err)
		}

		view, err := commands.NewViewFolderCommand(vault, req.GetString("folder_id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if view.Empty() {
			return mcp.NewToolResultText("Folder is empty."), nil
		}

		var sb strings.Builder
		for _, f := range view.Folders {
			fmt.Fprintf(&sb, "folder  %s  %s\n", f.ID, f.Name)
		}
		for _, f := range view.Files {
			fmt.Fprintf(&sb, "%-6s  %s  %s  (%s)\n", domain.KindOf(f.MimeType), f.ID, f.Name, f.MimeType)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- breadcrumb ---

func breadcrumbTool() mcp.Tool {
	return mcp.NewTool("breadcrumb",
		mcp.WithDescription("Show the path from the root to a folder."),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID"),
			mcp.Required(),
		),
		secretParam(),
	)
}

func breadcrumbHandler(vault *application.Vault, log zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderID := req.GetString("folder_id", "")
		if folderID == "" {
			return toolError(fmt.Errorf("folder_id is required"))
		}
		if err := unlock(ctx, vault, log, req); err != nil {
			return toolError(err)
		}

		doc, err := vault.Load(ctx)
		if err != nil {
			return toolError(err)
		}
		if !doc.HasContainer(folderID) {
			return toolError(fmt.Errorf("folder %s: %w", folderID, application.ErrNotFound))
		}
		return mcp.NewToolResultText("Root / " + commands.PathLabel(doc, folderID)), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the vault structure as a tree, followed by orphaned items."),
		secretParam(),
	)
}

func treeHandler(vault *application.Vault, log zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := unlock(ctx, vault, log, req); err != nil {
			return toolError(err)
		}

		tree, err := commands.NewBuildTreeCommand(vault).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString("Root\n")
		renderEntries(&sb, tree.Entries)
		if len(tree.Orphans) > 0 {
			sb.WriteString("\nOrphaned:\n")
			renderEntries(&sb, tree.Orphans)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderEntries(sb *strings.Builder, entries []commands.TreeEntry) {
	for _, e := range entries {
		prefix := strings.Repeat("  ", e.Depth+1)
		if e.IsFolder {
			fmt.Fprintf(sb, "%s%s/  [%s]\n", prefix, e.Folder.Name, e.Folder.ID)
			continue
		}
		fmt.Fprintf(sb, "%s%s  [%s]\n", prefix, e.File.Name, e.File.ID)
	}
}
