// File: typedstore/storage.go
package typedstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Storage is the capability a store persists through: any string-keyed
// string store. It is shared and externally owned; a store never assumes
// exclusive access to it, which is why conflict detection exists.
type Storage interface {
	// GetItem returns the string stored under key, and whether one exists.
	GetItem(key string) (string, bool)

	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error
}

// MemoryStorage is a mutex-guarded in-memory Storage, suitable for tests and
// for processes that only need persistence across store instances.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) GetItem(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	return value, ok
}

func (s *MemoryStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// RemoveItem deletes the value stored under key, if any.
func (s *MemoryStorage) RemoveItem(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// FileStorage persists each key as one file under a directory. Writes are
// atomic: data goes to a temporary file that is synced and renamed over the
// target, so readers never observe a partial write.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage rooted at dir, creating the directory
// if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory '%s': %w", dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) GetItem(key string) (string, bool) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStorage) SetItem(key, value string) error {
	path := s.keyPath(key)

	tempFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in '%s': %w", s.dir, err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.WriteString(value); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file to '%s': %w", path, err)
	}

	return nil
}

// keyPath maps a store name to a file path. Path separators in keys are
// flattened so a key can never escape the storage directory.
func (s *FileStorage) keyPath(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe)
}
