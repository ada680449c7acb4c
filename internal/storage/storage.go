// Package storage persists named snapshots as JSON documents in a local
// state directory. Each store serializes its whole collection under a fixed
// name; the snapshot is loaded once at startup and overwritten wholesale on
// every mutation. Writes go through a temp file plus rename, so a reader
// never observes a torn document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/helpdesk/internal/filex"
)

// Fixed snapshot names, matching the storage keys of the original system.
const (
	AuthSnapshot     = "auth-storage"
	TicketSnapshot   = "ticket-storage"
	SettingsSnapshot = "settings-storage"
)

// Store loads and saves named snapshots.
type Store interface {
	// Load unmarshals the snapshot into v. found is false when no snapshot
	// with that name exists yet; that is not an error.
	Load(name string, v any) (found bool, err error)

	// Save marshals v and replaces the named snapshot atomically.
	Save(name string, v any) error
}

// FileStore keeps each snapshot as <dir>/<name>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if _, err := filex.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the state directory the store is rooted at.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(name string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return true, nil
}

func (s *FileStore) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot %s: %w", name, err)
	}
	return nil
}
