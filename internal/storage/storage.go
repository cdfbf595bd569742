// Package storage provides a file-backed key-value store, the local
// analog of a browser's localStorage.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore keeps string values by key in a single JSON file.
// Every Put rewrites the whole file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file is
// created on the first Put.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) load() (map[string]string, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	defer f.Close()

	entries := map[string]string{}
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fs.path, err)
	}
	return entries, nil
}

func (fs *FileStore) save(entries map[string]string) error {
	f, err := os.Create(fs.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(entries)
}

// Get returns the value stored under key and whether it was present.
func (fs *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

// Put stores value under key, keeping the other keys of the file.
// An unreadable file is replaced.
func (fs *FileStore) Put(_ context.Context, key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.load()
	if err != nil {
		entries = map[string]string{}
	}
	entries[key] = string(value)
	if err := fs.save(entries); err != nil {
		return fmt.Errorf("write %s: %w", fs.path, err)
	}
	return nil
}
