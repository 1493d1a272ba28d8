package assets

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the read-only filesystem surface discovery and resolution
// consume. Implementations must return ReadDir entries in a
// deterministic order; discovery tie-breaking depends on it.
type FS interface {
	Exists(path string) bool
	IsDir(path string) bool
	ReadDir(path string) ([]fs.DirEntry, error)
	ReadFile(path string) ([]byte, error)
}

// OS returns the operating system filesystem.
func OS() FS { return osFS{} }

type osFS struct{}

func (osFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (osFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (osFS) ReadDir(path string) ([]fs.DirEntry, error) {
	// os.ReadDir sorts by filename
	return os.ReadDir(path)
}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// walkDirs calls fn for every directory under root, root included,
// pre-order with children in ReadDir order. Unreadable directories
// are skipped. fn returning false stops the walk.
func walkDirs(fsys FS, root string, fn func(dir string, entries []fs.DirEntry) bool) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return
	}
	if !fn(root, entries) {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			walkDirs(fsys, filepath.Join(root, e.Name()), fn)
		}
	}
}
