package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// FS adapts an afero.Fs to types.FS.
type FS struct {
	afs afero.Fs
}

func New(afs afero.Fs) *FS {
	return &FS{afs: afs}
}

// NewOS edits files on the host.
func NewOS() *FS {
	return New(afero.NewOsFs())
}

// NewMemory is an empty in-memory filesystem.
func NewMemory() *FS {
	return New(afero.NewMemMapFs())
}

// ReadOnly returns a view of f that rejects every mutation with a
// *fs.PathError wrapping syscall.EPERM.
func (f *FS) ReadOnly() *FS {
	return New(afero.NewReadOnlyFs(f.afs))
}

func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.afs.Stat(name)
}

// ReadFile refuses directories, which afero's MemMapFs would otherwise read
// as empty files.
func (f *FS) ReadFile(name string) ([]byte, error) {
	info, err := f.afs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(f.afs, name)
}

func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(f.afs, name, data, perm)
}

func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.afs.MkdirAll(path, perm)
}

func (f *FS) Remove(name string) error {
	return f.afs.Remove(name)
}

func (f *FS) Rename(oldpath, newpath string) error {
	return f.afs.Rename(oldpath, newpath)
}
