// Package adapter contains the infrastructure adapters of the coverage tool:
// file loading, external processes and report output.
package adapter

import (
	"os"
	"path/filepath"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// FSAdapter abstracts filesystem-specific operations that the loaders and
// the workflow rely on, so the domain logic can be tested without touching
// the disk.
type FSAdapter interface {
	// Walk traverses the tree rooted at root, directories included.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Remove deletes a single file.
	Remove(path m.Path) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter instance ready to be wired
// into the workflow.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user supplied trace and program files is the purpose of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Remove deletes a single file.
func (a *LocalFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}
