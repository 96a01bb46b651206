package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"calcvault/internal/application"
	"calcvault/internal/domain"
)

// ExportFileResult contains the result of exporting a file
type ExportFileResult struct {
	Result
	Path string
	Kind domain.MediaKind
}

// ExportFileCommand decodes a stored file's payload into a regular file so it
// can be played or opened outside the vault. An empty Dir exports to a fresh
// temporary directory.
type ExportFileCommand struct {
	vault  *application.Vault
	FileID string
	Dir    string
}

// NewExportFileCommand creates a new ExportFileCommand
func NewExportFileCommand(vault *application.Vault, fileID, dir string) *ExportFileCommand {
	return &ExportFileCommand{
		vault:  vault,
		FileID: fileID,
		Dir:    dir,
	}
}

// Validate checks if the export operation is valid
func (c *ExportFileCommand) Validate() error {
	return application.ValidateRequired("fileID", c.FileID)
}

// Execute runs the export file command
func (c *ExportFileCommand) Execute(ctx context.Context) (*ExportFileResult, error) {
	if err := c.Validate(); err != nil {
		return &ExportFileResult{Result: *skipped(err)}, nil
	}

	doc, err := c.vault.Load(ctx)
	if err != nil {
		return nil, err
	}

	file, ok := doc.FindFile(c.FileID)
	if !ok {
		return &ExportFileResult{
			Result: Result{Applied: false, Message: fmt.Sprintf("file %s: %v", c.FileID, application.ErrNotFound)},
		}, nil
	}

	mimeType, content, err := domain.DecodeDataURL(file.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file.Name, err)
	}

	dir := c.Dir
	if dir == "" {
		dir, err = os.MkdirTemp("", "calcvault-")
		if err != nil {
			return nil, fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	path := filepath.Join(dir, filepath.Base(file.Name))
	if err := os.WriteFile(path, content, 0600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &ExportFileResult{
		Result: Result{Applied: true, Message: fmt.Sprintf("Exported %s", file.Name)},
		Path:   path,
		Kind:   domain.KindOf(mimeType),
	}, nil
}
