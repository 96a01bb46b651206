package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"calcvault/internal/application"
	"calcvault/internal/application/commands"
	"calcvault/internal/domain"
)

// RegisterWriteTools adds all write vault tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, vault *application.Vault, ids domain.IDGenerator, log zerolog.Logger) {
	s.AddTool(createFolderTool(), createFolderHandler(vault, ids, log))
	s.AddTool(moveFileTool(), moveFileHandler(vault, log))
	s.AddTool(deleteTool(), deleteHandler(vault, log))
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder. Blank names are ignored."),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
		mcp.WithString("parent_id",
			mcp.Description("Parent folder ID. Omit to create in the root."),
		),
		secretParam(),
	)
}

func createFolderHandler(vault *application.Vault, ids domain.IDGenerator, log zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := unlock(ctx, vault, log, req); err != nil {
			return toolError(err)
		}

		cmd := commands.NewCreateFolderCommand(vault, ids, req.GetString("name", ""), req.GetString("parent_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Applied {
			return mcp.NewToolResultText(result.Message + " [" + result.Folder.ID + "]"), nil
		}
		return mcp.NewToolResultText("Skipped: " + result.Message), nil
	}
}

// --- move_file ---

func moveFileTool() mcp.Tool {
	return mcp.NewTool("move_file",
		mcp.WithDescription("Move a file into another folder. Folders cannot be moved."),
		mcp.WithString("file_id",
			mcp.Description("ID of the file to move"),
			mcp.Required(),
		),
		mcp.WithString("destination_id",
			mcp.Description("Destination folder ID. Omit for the root."),
		),
		secretParam(),
	)
}

func moveFileHandler(vault *application.Vault, log zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := unlock(ctx, vault, log, req); err != nil {
			return toolError(err)
		}

		cmd := commands.NewMoveFileCommand(vault, req.GetString("file_id", ""), req.GetString("destination_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return resultText(result.Result), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a file or folder. Deleting a folder leaves its content orphaned unless cascade is set."),
		mcp.WithString("id",
			mcp.Description("ID of the file or folder"),
			mcp.Required(),
		),
		mcp.WithBoolean("cascade",
			mcp.Description("Also delete everything inside the folder"),
		),
		secretParam(),
	)
}

func deleteHandler(vault *application.Vault, log zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := unlock(ctx, vault, log, req); err != nil {
			return toolError(err)
		}

		cmd := commands.NewDeleteCommand(vault, req.GetString("id", ""))
		cmd.Cascade = req.GetBool("cascade", false)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return resultText(result.Result), nil
	}
}

func resultText(r commands.Result) *mcp.CallToolResult {
	if r.Applied {
		return mcp.NewToolResultText(r.Message)
	}
	return mcp.NewToolResultText("Skipped: " + r.Message)
}
