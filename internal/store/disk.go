package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore implements a persistent file-per-key store
type DiskStore struct {
	dir string
}

// NewDiskStore creates a new disk store rooted at dir
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Get retrieves a value; any read failure reads as absent
func (s *DiskStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores a value. Write failures (quota, permissions) propagate to the
// caller; in-memory state is the caller's to keep.
func (s *DiskStore) Set(key string, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	return nil
}

// path generates the file path for a store key
func (s *DiskStore) path(key string) string {
	safe := strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, safe+".kv")
}
