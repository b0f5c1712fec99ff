// Package filesystem provides an abstraction layer for the read-only filesystem operations
// a directory analysis needs, so the same traversal can run against local disks, SFTP servers
// and in-memory trees in tests.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileSystem is the read-only view of a filesystem used by the analyzer.
// Every method must be safe for concurrent use.
type FileSystem interface {
	// ReadDirNames returns the names of the entries in dir, sorted ascending.
	ReadDirNames(dir string) ([]string, error)

	// Stat returns file information, following symbolic links.
	Stat(path string) (os.FileInfo, error)

	// Join joins path elements using the filesystem's separator.
	Join(elem ...string) string

	// Abs returns the absolute, cleaned form of path.
	Abs(path string) (string, error)

	// Identity returns the canonical identity of a directory. Two paths that reach the same
	// physical directory (through symlinks, bind mounts, etc.) return the same identity.
	Identity(path string, info os.FileInfo) (string, error)

	// Close releases any resources (remote connections) held by the filesystem.
	Close() error
}

// HiddenAttributer is implemented by filesystems that expose a platform hidden attribute
// in addition to the leading-dot naming convention.
type HiddenAttributer interface {
	HasHiddenAttribute(path string, info os.FileInfo) bool
}

// RealFileSystem implements FileSystem using the os and path/filepath packages.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Abs returns the absolute path with symlinks in the root left untouched.
func (fs *RealFileSystem) Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return abs, nil
}

// Close is a no-op for the local filesystem.
func (fs *RealFileSystem) Close() error {
	return nil
}

// Identity returns the canonical identity of a local directory.
func (fs *RealFileSystem) Identity(path string, info os.FileInfo) (string, error) {
	return localIdentity(path, info)
}

// Join joins path elements with the OS separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// ReadDirNames lists a directory without stat'ing its entries.
func (fs *RealFileSystem) ReadDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dir, err)
	}

	names, err := f.Readdirnames(-1)
	_ = f.Close()

	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	sort.Strings(names)

	return names, nil
}

// Stat returns file information, following symbolic links.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}
