package testutil

import (
	"io/fs"
	"path"
	"sync"
	"testing"

	"github.com/arthur-debert/rbedit/pkg/filesystem"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// MemFS returns an in-memory filesystem holding files, keyed by absolute
// path. Parent directories are created.
func MemFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	for p, content := range files {
		if err := fsys.MkdirAll(path.Dir(p), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", p, err)
		}
		if err := fsys.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", p, err)
		}
	}
	return fsys
}

// MustRead returns the content of a file in fsys
func MustRead(t *testing.T, fsys types.FS, p string) string {
	t.Helper()

	data, err := fsys.ReadFile(p)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", p, err)
	}
	return string(data)
}

// FailingFS wraps a filesystem and returns configured errors for paths
type FailingFS struct {
	types.FS

	mu     sync.RWMutex
	errors map[string]error
	writes int
}

// NewFailingFS wraps fsys
func NewFailingFS(fsys types.FS) *FailingFS {
	return &FailingFS{FS: fsys, errors: make(map[string]error)}
}

// WithError configures the filesystem to return an error for a specific path
func (f *FailingFS) WithError(p string, err error) *FailingFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errors[p] = err
	return f
}

// Writes returns how many WriteFile calls succeeded
func (f *FailingFS) Writes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes
}

func (f *FailingFS) errFor(p string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errors[p]
}

func (f *FailingFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.errFor(name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if err := f.errFor(name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.errFor(name); err != nil {
		return err
	}
	if err := f.FS.WriteFile(name, data, perm); err != nil {
		return err
	}
	f.mu.Lock()
	f.writes++
	f.mu.Unlock()
	return nil
}

func (f *FailingFS) Rename(oldpath, newpath string) error {
	if err := f.errFor(newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}
