// Package sdb implements the Store interface against the SALT Science
// Database. The production database is MySQL; a SQLite rendition of the
// same schema subset is supported for local snapshots and tests.
package sdb

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/saltastro/saltuser/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store provides read-only queries over the Science Database.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new Store instance. The store is not attached;
// call Attach with a Config to open the database connection.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the database connection described by config.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	s.db = db
	s.config = config
	s.attached = true

	return nil
}

// Detach closes the database connection. Idempotent.
// After Detach, all queries return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// conn returns the open database handle, or ErrStoreDetached if the
// store is not attached.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.db, nil
}
