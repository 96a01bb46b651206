package commands

import (
	"context"
	"strings"

	"calcvault/internal/application"
	"calcvault/internal/domain"
)

// ViewFolderCommand computes the content of one folder
type ViewFolderCommand struct {
	vault    *application.Vault
	FolderID string
}

// NewViewFolderCommand creates a new ViewFolderCommand
func NewViewFolderCommand(vault *application.Vault, folderID string) *ViewFolderCommand {
	return &ViewFolderCommand{
		vault:    vault,
		FolderID: application.NormalizeFolderID(folderID),
	}
}

// Execute runs the view folder command
func (c *ViewFolderCommand) Execute(ctx context.Context) (*domain.FolderView, error) {
	doc, err := c.vault.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildView(doc, c.FolderID), nil
}

// FolderOption is a move destination offered to the user
type FolderOption struct {
	ID    string
	Label string // breadcrumb path, e.g. "Photos / 2024"
}

// ListFoldersCommand lists every possible destination, root first
type ListFoldersCommand struct {
	vault *application.Vault
}

// NewListFoldersCommand creates a new ListFoldersCommand
func NewListFoldersCommand(vault *application.Vault) *ListFoldersCommand {
	return &ListFoldersCommand{vault: vault}
}

// Execute runs the list folders command
func (c *ListFoldersCommand) Execute(ctx context.Context) ([]FolderOption, error) {
	doc, err := c.vault.Load(ctx)
	if err != nil {
		return nil, err
	}
	return FolderOptions(doc), nil
}

// FolderOptions returns the root followed by every folder in document order,
// each labelled with its breadcrumb path
func FolderOptions(doc *domain.Document) []FolderOption {
	options := []FolderOption{{ID: domain.RootID, Label: "Root"}}
	for _, f := range doc.Folders {
		options = append(options, FolderOption{ID: f.ID, Label: PathLabel(doc, f.ID)})
	}
	return options
}

// PathLabel joins the breadcrumb names of a folder
func PathLabel(doc *domain.Document, folderID string) string {
	path := domain.BreadcrumbPath(doc, folderID)
	if len(path) == 0 {
		return "Root"
	}
	names := make([]string, len(path))
	for i, f := range path {
		names[i] = f.Name
	}
	return strings.Join(names, " / ")
}

// TreeEntry is one line of the flattened vault tree
type TreeEntry struct {
	Depth    int
	IsFolder bool
	Folder   domain.Folder
	File     domain.File
}

// Tree is the flattened vault. Orphans are items whose folder no longer
// exists, typically left behind by a non-cascading delete.
type Tree struct {
	Entries []TreeEntry
	Orphans []TreeEntry
}

// BuildTreeCommand builds the complete tree structure
type BuildTreeCommand struct {
	vault *application.Vault
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(vault *application.Vault) *BuildTreeCommand {
	return &BuildTreeCommand{vault: vault}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) (*Tree, error) {
	doc, err := c.vault.Load(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(doc), nil
}

// BuildTree flattens the document depth first, folders before files
func BuildTree(doc *domain.Document) *Tree {
	tree := &Tree{}
	seen := make(map[string]bool)

	var walk func(folderID string, depth int)
	walk = func(folderID string, depth int) {
		for _, f := range domain.ChildFolders(doc, folderID) {
			if seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			tree.Entries = append(tree.Entries, TreeEntry{Depth: depth, IsFolder: true, Folder: f})
			walk(f.ID, depth+1)
		}
		for _, f := range domain.ChildFiles(doc, folderID) {
			seen[f.ID] = true
			tree.Entries = append(tree.Entries, TreeEntry{Depth: depth, File: f})
		}
	}
	walk(domain.RootID, 0)

	for _, f := range doc.Folders {
		if !seen[f.ID] {
			tree.Orphans = append(tree.Orphans, TreeEntry{IsFolder: true, Folder: f})
		}
	}
	for _, f := range doc.Files {
		if !seen[f.ID] {
			tree.Orphans = append(tree.Orphans, TreeEntry{File: f})
		}
	}
	return tree
}
