// Package state persists the card snapshot as a single JSON file.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cardbox/internal/config"
	"cardbox/internal/domain"
)

// FileStore implements ports.StateStore over one JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a state store at path. A leading ~ is expanded.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: config.ExpandHome(path)}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads and decodes the snapshot. A missing or unreadable file yields
// an empty snapshot rather than an error, so first run and a corrupt blob
// both start clean.
func (f *FileStore) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.EmptySnapshot(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.EmptySnapshot(), nil
	}
	return &snap, nil
}

// Save writes the snapshot atomically via a temp file rename.
func (f *FileStore) Save(snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "cards-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
