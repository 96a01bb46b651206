package commands

import (
	"context"
	"fmt"

	"calcvault/internal/application"
	"calcvault/internal/domain"
)

// MoveFileResult contains the result of moving a file
type MoveFileResult struct {
	Result
	File *domain.File
}

// MoveFileCommand re-parents a file. Folders cannot be moved.
type MoveFileCommand struct {
	vault         *application.Vault
	FileID        string
	DestinationID string
}

// NewMoveFileCommand creates a new MoveFileCommand
func NewMoveFileCommand(vault *application.Vault, fileID, destinationID string) *MoveFileCommand {
	return &MoveFileCommand{
		vault:         vault,
		FileID:        fileID,
		DestinationID: application.NormalizeFolderID(destinationID),
	}
}

// Validate checks the input that does not depend on the stored document
func (c *MoveFileCommand) Validate() error {
	return application.ValidateRequired("fileID", c.FileID)
}

// Execute runs the move file command
func (c *MoveFileCommand) Execute(ctx context.Context) (*MoveFileResult, error) {
	if err := c.Validate(); err != nil {
		return &MoveFileResult{Result: *skipped(err)}, nil
	}

	var moved domain.File
	var rejected error
	_, applied, err := c.vault.Update(ctx, func(doc *domain.Document) bool {
		if err := ValidateMoveDestination(doc, c.FileID, c.DestinationID); err != nil {
			rejected = err
			return false
		}
		file, _ := doc.FindFile(c.FileID)
		file.FolderID = c.DestinationID
		moved = *file
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to move file: %w", err)
	}
	if !applied {
		return &MoveFileResult{Result: *skipped(rejected)}, nil
	}

	return &MoveFileResult{
		Result: Result{
			Applied: true,
			Message: fmt.Sprintf("Moved %s", moved.Name),
		},
		File: &moved,
	}, nil
}

// ValidateMoveDestination checks if a move is valid without executing it
func ValidateMoveDestination(doc *domain.Document, sourceID, destID string) error {
	file, ok := doc.FindFile(sourceID)
	if !ok {
		if _, isFolder := doc.FindFolder(sourceID); isFolder {
			return &application.MoveError{
				SourceID: sourceID,
				DestID:   destID,
				Reason:   "folders cannot be moved",
			}
		}
		return &application.MoveError{
			SourceID: sourceID,
			DestID:   destID,
			Reason:   "no such file",
		}
	}

	if !doc.HasContainer(destID) {
		return &application.MoveError{
			SourceID: sourceID,
			DestID:   destID,
			Reason:   "no such folder",
		}
	}

	if file.FolderID == destID {
		return &application.MoveError{
			SourceID: sourceID,
			DestID:   destID,
			Reason:   "file is already there",
		}
	}

	return nil
}
