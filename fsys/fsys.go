// Package fsys abstracts the file operations the content services need,
// so the services can run against a real tree or an in-memory one in
// tests.
package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte) error
	Exists(path string) bool
	Remove(path string) error
}

// DiskFS writes through a temp file and rename, so a crash mid-write
// never leaves a half-written script behind.
type DiskFS struct{}

func NewDiskFS() *DiskFS {
	return &DiskFS{}
}

func (fs *DiskFS) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

func (fs *DiskFS) WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}

func (fs *DiskFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (fs *DiskFS) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// MemFS is a map-backed FS for tests.
type MemFS struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (fs *MemFS) ReadFile(path string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	content, ok := fs.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (fs *MemFS) WriteFile(path string, content []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	stored := make([]byte, len(content))
	copy(stored, content)
	fs.files[path] = stored
	return nil
}

func (fs *MemFS) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	_, ok := fs.files[path]
	return ok
}

func (fs *MemFS) Remove(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.files[path]; !ok {
		return fmt.Errorf("remove %s: %w", path, os.ErrNotExist)
	}
	delete(fs.files, path)
	return nil
}

// Paths returns the stored paths in sorted order.
func (fs *MemFS) Paths() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	paths := make([]string, 0, len(fs.files))
	for path := range fs.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
