package commands

import (
	"context"
	"fmt"
	"strings"

	"calcvault/internal/application"
	"calcvault/internal/domain"
)

// CreateFolderResult contains the result of creating a folder
type CreateFolderResult struct {
	Result
	Folder *domain.Folder
}

// CreateFolderCommand creates a folder inside another folder or the root
type CreateFolderCommand struct {
	vault    *application.Vault
	ids      domain.IDGenerator
	Name     string
	ParentID string
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(vault *application.Vault, ids domain.IDGenerator, name, parentID string) *CreateFolderCommand {
	return &CreateFolderCommand{
		vault:    vault,
		ids:      ids,
		Name:     name,
		ParentID: application.NormalizeFolderID(parentID),
	}
}

// Validate checks the input that does not depend on the stored document
func (c *CreateFolderCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*CreateFolderResult, error) {
	if err := c.Validate(); err != nil {
		return &CreateFolderResult{Result: *skipped(err)}, nil
	}

	folder := domain.Folder{
		ID:       c.ids.NewID(),
		Name:     strings.TrimSpace(c.Name),
		ParentID: c.ParentID,
	}

	var rejected error
	_, applied, err := c.vault.Update(ctx, func(doc *domain.Document) bool {
		if err := application.ValidateContainer("parentID", doc, c.ParentID); err != nil {
			rejected = err
			return false
		}
		// A parent whose chain never reaches the root would put the new
		// folder inside a cycle or under an orphan.
		if !domain.IsAncestor(doc, domain.RootID, c.ParentID) {
			rejected = &application.ValidationError{
				Field:   "parentID",
				Message: fmt.Sprintf("folder %s is not reachable from the root", c.ParentID),
			}
			return false
		}
		doc.Folders = append(doc.Folders, folder)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	if !applied {
		return &CreateFolderResult{Result: *skipped(rejected)}, nil
	}

	return &CreateFolderResult{
		Result: Result{
			Applied: true,
			Message: fmt.Sprintf("Created folder %s", folder.Name),
		},
		Folder: &folder,
	}, nil
}
