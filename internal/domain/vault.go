package domain

import "strings"

// RootID is the sentinel parent of top-level folders and files.
// It is never stored as a folder.
const RootID = "root"

// StorageKey is the key the vault document is persisted under
const StorageKey = "portal_db"

// Folder is a named container inside the vault
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"` // RootID or another folder's ID
}

// File is an uploaded file with its payload inlined as a data URL
type File struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"type"`
	Data     string `json:"data"`     // e.g. "data:image/png;base64,..."
	FolderID string `json:"folderId"` // RootID or a folder's ID
}

// Document is the single persisted blob holding the whole vault
type Document struct {
	Files         []File   `json:"files"`
	Folders       []Folder `json:"folders"`
	IsLockEnabled bool     `json:"isLockEnabled"`
	Secret        string   `json:"secret"`
}

// NewDocument returns the default empty document
func NewDocument() *Document {
	return &Document{
		Files:   []File{},
		Folders: []Folder{},
	}
}

// Normalize repairs a decoded document in place so callers never have to
// trust its shape: nil lists become empty, entries without an ID are dropped
// and blank parent references point at the root.
func (d *Document) Normalize() *Document {
	files := make([]File, 0, len(d.Files))
	for _, f := range d.Files {
		if strings.TrimSpace(f.ID) == "" {
			continue
		}
		if f.FolderID == "" {
			f.FolderID = RootID
		}
		files = append(files, f)
	}
	d.Files = files

	folders := make([]Folder, 0, len(d.Folders))
	for _, f := range d.Folders {
		if strings.TrimSpace(f.ID) == "" || f.ID == RootID {
			continue
		}
		if f.ParentID == "" {
			f.ParentID = RootID
		}
		folders = append(folders, f)
	}
	d.Folders = folders

	return d
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	c := &Document{
		Files:         make([]File, len(d.Files)),
		Folders:       make([]Folder, len(d.Folders)),
		IsLockEnabled: d.IsLockEnabled,
		Secret:        d.Secret,
	}
	copy(c.Files, d.Files)
	copy(c.Folders, d.Folders)
	return c
}

// FindFolder returns the folder with the given ID
func (d *Document) FindFolder(id string) (*Folder, bool) {
	for i := range d.Folders {
		if d.Folders[i].ID == id {
			return &d.Folders[i], true
		}
	}
	return nil, false
}

// FindFile returns the file with the given ID
func (d *Document) FindFile(id string) (*File, bool) {
	for i := range d.Files {
		if d.Files[i].ID == id {
			return &d.Files[i], true
		}
	}
	return nil, false
}

// HasContainer reports whether id is the root or an existing folder
func (d *Document) HasContainer(id string) bool {
	if id == RootID {
		return true
	}
	_, ok := d.FindFolder(id)
	return ok
}

// RemoveItem drops every file and folder whose ID matches.
// Both lists are filtered; it reports how many entries were removed.
func (d *Document) RemoveItem(id string) int {
	removed := 0

	files := d.Files[:0]
	for _, f := range d.Files {
		if f.ID == id {
			removed++
			continue
		}
		files = append(files, f)
	}
	d.Files = files

	folders := d.Folders[:0]
	for _, f := range d.Folders {
		if f.ID == id {
			removed++
			continue
		}
		folders = append(folders, f)
	}
	d.Folders = folders

	return removed
}

// Equal reports whether two documents hold the same content
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.IsLockEnabled != o.IsLockEnabled || d.Secret != o.Secret {
		return false
	}
	if len(d.Files) != len(o.Files) || len(d.Folders) != len(o.Folders) {
		return false
	}
	for i := range d.Files {
		if d.Files[i] != o.Files[i] {
			return false
		}
	}
	for i := range d.Folders {
		if d.Folders[i] != o.Folders[i] {
			return false
		}
	}
	return true
}
