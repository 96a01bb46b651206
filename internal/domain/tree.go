package domain

// FolderView is the derived, read-only content of one folder
type FolderView struct {
	FolderID string
	Path     []Folder // root-to-leaf, root excluded
	Folders  []Folder
	Files    []File
}

// Empty reports whether the folder has no children at all
func (v *FolderView) Empty() bool {
	return len(v.Folders) == 0 && len(v.Files) == 0
}

// ChildFolders returns the folders directly inside folderID, in document order
func ChildFolders(doc *Document, folderID string) []Folder {
	var result []Folder
	for _, f := range doc.Folders {
		if f.ParentID == folderID {
			result = append(result, f)
		}
	}
	return result
}

// ChildFiles returns the files directly inside folderID, in document order
func ChildFiles(doc *Document, folderID string) []File {
	var result []File
	for _, f := range doc.Files {
		if f.FolderID == folderID {
			result = append(result, f)
		}
	}
	return result
}

// BreadcrumbPath walks parent links from folderID up to the root and returns
// the chain in root-to-leaf order, root excluded. A dangling parent ends the
// walk early; a cycle or a chain longer than the folder count stops it too.
func BreadcrumbPath(doc *Document, folderID string) []Folder {
	if folderID == RootID {
		return nil
	}

	var path []Folder
	visited := make(map[string]bool, len(doc.Folders))
	current := folderID

	for depth := 0; depth <= len(doc.Folders) && current != RootID; depth++ {
		if visited[current] {
			break
		}
		visited[current] = true

		folder, ok := doc.FindFolder(current)
		if !ok {
			break
		}
		path = append(path, *folder)
		current = folder.ParentID
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// BuildView computes the view of a folder
func BuildView(doc *Document, folderID string) *FolderView {
	return &FolderView{
		FolderID: folderID,
		Path:     BreadcrumbPath(doc, folderID),
		Folders:  ChildFolders(doc, folderID),
		Files:    ChildFiles(doc, folderID),
	}
}

// Subtree returns the IDs of every folder below folderID (folderID excluded),
// breadth first. Cycles in malformed data are visited once.
func Subtree(doc *Document, folderID string) []string {
	var result []string
	seen := map[string]bool{folderID: true}
	queue := []string{folderID}

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, f := range doc.Folders {
			if f.ParentID != parent || seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			result = append(result, f.ID)
			queue = append(queue, f.ID)
		}
	}
	return result
}

// IsAncestor reports whether ancestorID appears on the parent chain of
// folderID (folderID itself included). The root is an ancestor only of
// folders whose chain actually ends there, so cyclic or dangling chains
// have no root ancestor.
func IsAncestor(doc *Document, ancestorID, folderID string) bool {
	if ancestorID == folderID {
		return true
	}
	path := BreadcrumbPath(doc, folderID)
	if ancestorID == RootID {
		return len(path) > 0 && path[0].ParentID == RootID && path[len(path)-1].ID == folderID
	}
	for _, f := range path {
		if f.ID == ancestorID {
			return true
		}
	}
	return false
}
