// Package fs defines the filesystem abstraction used by sasjslint for reading
// sources and configuration and for persisting cache entries.
package fs

import (
	"os"
	"path/filepath"
)

// ReadFS is the read-only subset of Filesystem.
type ReadFS interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for name.
	Stat(name string) (os.FileInfo, error)
	// Walk walks the tree rooted at root in lexical order.
	Walk(root string, walkFn filepath.WalkFunc) error
}

// Filesystem is a read-write filesystem.
type Filesystem interface {
	ReadFS

	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
	WriteFile(filename string, data []byte, perm os.FileMode) error
}
