package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Backend.Get when the key holds no data.
var ErrNotFound = errors.New("key not found")

// Backend is a key-value store of opaque blobs.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

// DefaultDir returns the data directory used when none is configured.
func DefaultDir(homeDir string) string {
	return filepath.Join(homeDir, ".daytask")
}

// FileBackend stores every key as <dir>/<key>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a backend rooted at dir. The directory is created on
// the first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Dir returns the backend's root directory.
func (b *FileBackend) Dir() string {
	return b.dir
}

// Path returns the file that holds key.
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(b.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Put(key string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(b.Path(key), data, 0644)
}

// MemoryBackend keeps blobs in memory. It backs sessions whose storage is
// unavailable and is handy in tests.
type MemoryBackend struct {
	data map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(key string) ([]byte, error) {
	data, ok := b.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (b *MemoryBackend) Put(key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	b.data[key] = stored
	return nil
}
