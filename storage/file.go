package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists each key as <dataDir>/<key>.json.
type File struct {
	mu      sync.Mutex
	dataDir string
}

// NewFile returns a file backend rooted at dataDir, creating it if needed.
func NewFile(dataDir string) (*File, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("storage: data dir is required")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	return &File{dataDir: dataDir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dataDir, key+".json")
}

func (f *File) Read(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}

func (f *File) Write(key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}
