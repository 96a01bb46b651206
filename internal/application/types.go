package application

import "calcvault/internal/domain"

// Re-export domain types for use by adapters
type (
	Document   = domain.Document
	Folder     = domain.Folder
	File       = domain.File
	FolderView = domain.FolderView
)

// RootID is the sentinel parent of top-level items
const RootID = domain.RootID

// IsRoot reports whether id refers to the vault root. The empty string is
// accepted as root so adapters can treat an omitted folder argument as root.
func IsRoot(id string) bool {
	return id == "" || id == domain.RootID
}

// NormalizeFolderID maps an omitted folder argument to the root
func NormalizeFolderID(id string) string {
	if IsRoot(id) {
		return domain.RootID
	}
	return id
}
