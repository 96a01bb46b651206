package filesystem

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"calcvault/internal/ports"
)

// LocalFile is an upload source backed by a file on disk
type LocalFile struct {
	path string
}

// Ensure LocalFile implements UploadSource
var _ ports.UploadSource = (*LocalFile)(nil)

// NewLocalFile creates an upload source for path
func NewLocalFile(path string) *LocalFile {
	return &LocalFile{path: path}
}

// LocalFiles wraps several paths
func LocalFiles(paths []string) []ports.UploadSource {
	sources := make([]ports.UploadSource, len(paths))
	for i, p := range paths {
		sources[i] = NewLocalFile(p)
	}
	return sources
}

// Name returns the base name of the file
func (f *LocalFile) Name() string {
	return filepath.Base(f.path)
}

// ReadAll reads the whole file. The MIME type comes from the extension and,
// when that is unknown, from the content.
func (f *LocalFile) ReadAll(ctx context.Context) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	content, err := os.ReadFile(f.path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return DetectMimeType(f.path, content), content, nil
}

// DetectMimeType guesses a MIME type without parameters
func DetectMimeType(path string, content []byte) string {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}
	if base, _, err := mime.ParseMediaType(mimeType); err == nil {
		return base
	}
	return mimeType
}
