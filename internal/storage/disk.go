package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get when no blob exists at the given path.
var ErrNotFound = errors.New("content not found")

// DiskStore persists raw file bytes under a configured root directory.
// Blob names are generated, never derived from user input, so display names
// cannot collide or escape the root.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

// Put writes data to a freshly generated path and returns the absolute path.
func (s *DiskStore) Put(data []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage root: %w", err)
	}

	path := filepath.Join(s.root, uuid.New().String())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return path, nil
}

// Get reads the blob at path, which must have come from Put (possibly with a
// derived-variant suffix).
func (s *DiskStore) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}
