// Package inventory keeps a sqlite record of every document a build
// run writes. The catalog files on disk remain the source of truth;
// the inventory is a query convenience over past runs.
package inventory

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("inventory store closed")
)

// Build identifies one build run. Every document recorded during the
// run carries its id.
type Build struct {
	ID        string
	StartedAt time.Time
}

// NewBuild returns a build with a fresh time-ordered id.
func NewBuild() Build {
	return Build{
		ID:        generateUUID(),
		StartedAt: time.Now().UTC(),
	}
}

// generateUUID generates a new UUID v7 for build IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// Document is one written catalog document.
type Document struct {
	Kind     string
	NodeID   string
	TreePath string
	FilePath string
	Size     int64
}

// Entry is one recorded row: a document plus its build context.
type Entry struct {
	Document

	BuildID string
	SavedAt time.Time
}

// Store is a sqlite-backed document inventory.
type Store struct {
	mu   sync.RWMutex
	open bool
	dir  string
	db   *sql.DB
}

// Open creates the data directory if needed and opens the inventory
// database inside it, applying the schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("inventory dir %q: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "inventory.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", dbPath, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{open: true, dir: dir, db: db}, nil
}

// Close releases the database connection. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close inventory: %w", err)
	}
	return nil
}

// Dir returns the directory the store was opened over.
func (s *Store) Dir() string { return s.dir }

// Record inserts one row per document, all stamped with the build id
// and a shared saved-at timestamp. The insert is transactional: either
// every document is recorded or none.
func (s *Store) Record(build Build, docs ...Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrClosed
	}
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO documents
		(build_id, kind, node_id, tree_path, file_path, size_bytes, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	defer stmt.Close()

	savedAt := time.Now().UTC().Format(time.RFC3339)
	for _, d := range docs {
		if _, err := stmt.Exec(build.ID, d.Kind, d.NodeID, d.TreePath, d.FilePath, d.Size, savedAt); err != nil {
			return fmt.Errorf("record %s %q: %w", d.Kind, d.NodeID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return nil
}

// List returns every recorded entry, newest first.
func (s *Store) List() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(`SELECT build_id, kind, node_id, tree_path, file_path, size_bytes, saved_at
		FROM documents ORDER BY saved_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var savedAt string
		if err := rows.Scan(&e.BuildID, &e.Kind, &e.NodeID, &e.TreePath, &e.FilePath, &e.Size, &savedAt); err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		t, err := time.Parse(time.RFC3339, savedAt)
		if err != nil {
			return nil, fmt.Errorf("list: saved_at %q: %w", savedAt, err)
		}
		e.SavedAt = t
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return entries, nil
}
