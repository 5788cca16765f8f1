// Package filestore persists the vector store as a single JSON snapshot on
// disk. Ingestion replaces the file atomically (write to a temp file in the
// same directory, then rename), so concurrent readers always see either the
// previous snapshot or the new one, never a partial write.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inquiry/internal/domain"
)

// Store reads and replaces the snapshot at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot location.
func (s *Store) Path() string { return s.path }

// Load reads the current snapshot. A missing file surfaces as fs.ErrNotExist
// (callers treat that as "nothing to retrieve"); a file that cannot be
// decoded wraps domain.ErrMalformedStore.
func (s *Store) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedStore, s.path, err)
	}
	return &snap, nil
}

// Replace atomically swaps in a new snapshot, creating the parent directory
// if needed.
func (s *Store) Replace(snap *domain.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// Best effort; gone already if the rename succeeded.
		_ = os.Remove(tmp.Name())
	}()
	enc := json.NewEncoder(tmp)
	if err := enc.Encode(snap); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
