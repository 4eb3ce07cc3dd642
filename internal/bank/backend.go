// Package bank implements the persistent SQLite word bank. A bank stores
// dictionary entries across runs so stories can be generated without
// re-parsing the source JSON.
package bank

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/storyforge/madlib/pkg/types"
)

// Backend holds an attached SQLite word bank.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	path     string
	db       *sql.DB
}

// NewBackend creates a word bank backend. The backend is not attached;
// call Attach with a database path to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the bank database at path and ensures the
// schema exists. Returns ErrBankAttached if already attached.
func (b *Backend) Attach(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrBankAttached
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bank directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open bank database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("initialize bank schema: %w", err)
	}

	b.db = db
	b.path = path
	b.attached = true
	return nil
}

// Detach closes the bank database. Idempotent; after Detach all
// operations return ErrBankDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Path returns the database path of an attached bank.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}
