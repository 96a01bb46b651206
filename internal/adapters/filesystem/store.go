package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// Store implements ports.DocumentStore as a single JSON file named after the
// storage key inside a directory
type Store struct {
	dir  string
	path string
	log  zerolog.Logger
}

// Ensure Store implements DocumentStore
var _ ports.DocumentStore = (*Store)(nil)

// NewStore creates a store keeping its document in dir
func NewStore(dir string, log zerolog.Logger) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}
	return &Store{
		dir:  dir,
		path: filepath.Join(dir, domain.StorageKey+".json"),
		log:  log,
	}
}

// Path returns the document file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the document file. A missing file or undecodable content yields
// the default document.
func (s *Store) Load(_ context.Context) (*domain.Document, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("stored document is corrupt, starting empty")
		return domain.NewDocument(), nil
	}
	return doc.Normalize(), nil
}

// Save writes the whole document through a temp file and a rename, so a
// crash never leaves a half-written document behind
func (s *Store) Save(_ context.Context, doc *domain.Document) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := atomicWriteFile(s.dir, domain.StorageKey+".*.tmp", s.path, b, 0600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Wipe removes the document file
func (s *Store) Wipe(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to wipe document: %w", err)
	}
	return nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
