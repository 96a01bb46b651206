package commands

import (
	"context"
	"fmt"

	"calcvault/internal/application"
	"calcvault/internal/domain"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Result
	DeletedID string
	Removed   int
}

// DeleteCommand deletes a file or folder by ID.
//
// By default deleting a folder leaves its contents in the document, pointing
// at a folder that no longer exists. Cascade removes the whole subtree.
type DeleteCommand struct {
	vault   *application.Vault
	ID      string
	Cascade bool
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(vault *application.Vault, id string) *DeleteCommand {
	return &DeleteCommand{
		vault: vault,
		ID:    id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	if err := application.ValidateRequired("itemID", c.ID); err != nil {
		return err
	}
	if c.ID == domain.RootID {
		return &application.ValidationError{
			Field:   "itemID",
			Message: "the root cannot be deleted",
		}
	}
	return nil
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return &DeleteResult{Result: *skipped(err)}, nil
	}

	removed := 0
	_, applied, err := c.vault.Update(ctx, func(doc *domain.Document) bool {
		if c.Cascade {
			if _, ok := doc.FindFolder(c.ID); ok {
				removed = removeSubtree(doc, c.ID)
				return removed > 0
			}
		}
		removed = doc.RemoveItem(c.ID)
		return removed > 0
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.ID, err)
	}
	if !applied {
		return &DeleteResult{
			Result:    Result{Applied: false, Message: fmt.Sprintf("Nothing to delete for %s", c.ID)},
			DeletedID: c.ID,
		}, nil
	}

	return &DeleteResult{
		Result:    Result{Applied: true, Message: fmt.Sprintf("Deleted %s", c.ID)},
		DeletedID: c.ID,
		Removed:   removed,
	}, nil
}

// removeSubtree deletes a folder, every folder below it and all their files
func removeSubtree(doc *domain.Document, folderID string) int {
	doomed := map[string]bool{folderID: true}
	for _, id := range domain.Subtree(doc, folderID) {
		doomed[id] = true
	}

	removed := 0
	files := doc.Files[:0]
	for _, f := range doc.Files {
		if doomed[f.FolderID] {
			removed++
			continue
		}
		files = append(files, f)
	}
	doc.Files = files

	folders := doc.Folders[:0]
	for _, f := range doc.Folders {
		if doomed[f.ID] {
			removed++
			continue
		}
		folders = append(folders, f)
	}
	doc.Folders = folders

	return removed
}
