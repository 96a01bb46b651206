package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"calcvault/internal/domain"
	"calcvault/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements ports.DocumentStore with one row per document in SQLite
type Store struct {
	db   *sql.DB
	path string
	key  string
	log  zerolog.Logger
}

// Ensure Store implements DocumentStore
var _ ports.DocumentStore = (*Store)(nil)

// Open opens (creating if needed) the database at path and migrates it
func Open(path string, log zerolog.Logger) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL lets the CLI read while the TUI holds the database open
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:   db,
		path: path,
		key:  domain.StorageKey,
		log:  log,
	}, nil
}

// DefaultPath returns the database location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "calcvault", "calcvault.db")
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the document row. A missing row or an undecodable body yields
// the default document.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, s.key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored document is corrupt, starting empty")
		return domain.NewDocument(), nil
	}
	return doc.Normalize(), nil
}

// Save replaces the document row in one transaction
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	if err := tx.Upsert(s.key, body); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write document: %w", err)
	}
	return tx.Commit()
}

// Wipe deletes the document row
func (s *Store) Wipe(ctx context.Context) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	if err := tx.Delete(s.key); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to wipe document: %w", err)
	}
	return tx.Commit()
}

// SetRaw stores body verbatim, bypassing encoding
func (s *Store) SetRaw(ctx context.Context, body string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	if err := tx.Upsert(s.key, []byte(body)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) begin(ctx context.Context) (*documentTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &documentTx{ctx: ctx, tx: tx}, nil
}

func expandHome(path string) (string, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, rest), nil
	}
	return path, nil
}
