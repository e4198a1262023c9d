package types

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required for cratedig operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Walk(root string, fn filepath.WalkFunc) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Lstat must not follow symlinks; implementations without native
	// symlink support may fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Pather provides the root paths the engine operates between
type Pather interface {
	// SourceRoot returns the watched sample library root
	SourceRoot() string

	// OrganizedRoot returns the root of the organized link tree
	OrganizedRoot() string

	// StateFilePath returns the path of the persisted link index
	StateFilePath() string

	// CategoryDir returns the absolute directory for a category path
	CategoryDir(category CategoryPath) string
}
