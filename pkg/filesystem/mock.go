package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// maxLinkHops bounds symlink resolution, like ELOOP on real systems.
const maxLinkHops = 40

// MockFileSystem is an in-memory filesystem implementation for testing.
// Paths are slash-separated and absolute. Directory symlinks may form cycles.
type MockFileSystem struct {
	mu    sync.RWMutex
	nodes map[string]*mockNode
}

// mockNode represents a file, directory or symlink in the mock filesystem.
type mockNode struct {
	size       int64
	modTime    time.Time
	isDir      bool
	linkTarget string
	unreadable bool
	hidden     bool
}

// mockFileInfo implements os.FileInfo for mock nodes.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() any           { return nil }

func (fi *mockFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return fs.ModeDir | 0o755
	}

	return 0o644
}

// NewMockFileSystem creates an empty mock filesystem containing only "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		nodes: map[string]*mockNode{
			"/": {isDir: true},
		},
	}
}

// AddDir adds a directory (and any missing parents).
func (m *MockFileSystem) AddDir(dirPath string, modTime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureParents(dirPath)
	m.nodes[path.Clean(dirPath)] = &mockNode{isDir: true, modTime: modTime}
}

// AddFile adds a regular file of the given size (and any missing parent directories).
func (m *MockFileSystem) AddFile(filePath string, size int64, modTime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureParents(filePath)
	m.nodes[path.Clean(filePath)] = &mockNode{size: size, modTime: modTime}
}

// AddSymlink adds a symbolic link pointing at target (absolute).
func (m *MockFileSystem) AddSymlink(linkPath, target string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureParents(linkPath)
	m.nodes[path.Clean(linkPath)] = &mockNode{linkTarget: path.Clean(target)}
}

// SetHidden marks a node as carrying the platform hidden attribute.
func (m *MockFileSystem) SetHidden(nodePath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if node, ok := m.nodes[path.Clean(nodePath)]; ok {
		node.hidden = true
	}
}

// SetUnreadable makes Stat and ReadDirNames on the node fail with a permission error.
func (m *MockFileSystem) SetUnreadable(nodePath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if node, ok := m.nodes[path.Clean(nodePath)]; ok {
		node.unreadable = true
	}
}

// Abs cleans an absolute path; relative paths are resolved against "/".
func (m *MockFileSystem) Abs(p string) (string, error) {
	return path.Join("/", p), nil
}

// Close is a no-op.
func (m *MockFileSystem) Close() error {
	return nil
}

// HasHiddenAttribute reports nodes marked with SetHidden.
func (m *MockFileSystem) HasHiddenAttribute(p string, _ os.FileInfo) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, ok := m.nodes[path.Clean(p)]

	return ok && node.hidden
}

// Identity returns the symlink-free path of a directory.
func (m *MockFileSystem) Identity(p string, _ os.FileInfo) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, _, err := m.resolve(p)
	if err != nil {
		return "", err
	}

	return "mock:" + resolved, nil
}

// Join joins path elements with forward slashes.
func (m *MockFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// ReadDirNames lists the direct children of a directory, sorted ascending.
func (m *MockFileSystem) ReadDirNames(dir string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, node, err := m.resolve(dir)
	if err != nil {
		return nil, err
	}

	if !node.isDir {
		return nil, &fs.PathError{Op: "readdirent", Path: dir, Err: fmt.Errorf("not a directory")}
	}

	if node.unreadable {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrPermission}
	}

	prefix := resolved + "/"
	if resolved == "/" {
		prefix = "/"
	}

	names := make([]string, 0)
	for nodePath := range m.nodes {
		if nodePath == resolved || !strings.HasPrefix(nodePath, prefix) {
			continue
		}

		rest := nodePath[len(prefix):]
		if rest != "" && !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}

	sort.Strings(names)

	return names, nil
}

// Stat follows symlinks and returns info named after the requested path.
func (m *MockFileSystem) Stat(p string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, node, err := m.resolve(p)
	if err != nil {
		return nil, err
	}

	if node.unreadable && !node.isDir {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrPermission}
	}

	return &mockFileInfo{
		name:    path.Base(p),
		size:    node.size,
		modTime: node.modTime,
		isDir:   node.isDir,
	}, nil
}

// ensureParents creates missing parent directories. Caller holds the lock.
func (m *MockFileSystem) ensureParents(p string) {
	for dir := path.Dir(path.Clean(p)); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, ok := m.nodes[dir]; !ok {
			m.nodes[dir] = &mockNode{isDir: true}
		}
	}
}

// resolve follows symlinks in every component of p. Caller holds the lock.
func (m *MockFileSystem) resolve(p string) (string, *mockNode, error) {
	current := "/"
	parts := strings.Split(strings.Trim(path.Clean(p), "/"), "/")
	hops := 0

	for len(parts) > 0 {
		part := parts[0]
		parts = parts[1:]

		if part == "" {
			continue
		}

		next := path.Join(current, part)

		node, ok := m.nodes[next]
		if !ok {
			return "", nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
		}

		if node.linkTarget == "" {
			current = next

			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", nil, &fs.PathError{Op: "stat", Path: p, Err: fmt.Errorf("too many levels of symbolic links")}
		}

		target := strings.Trim(node.linkTarget, "/")
		if target != "" {
			parts = append(strings.Split(target, "/"), parts...)
		}

		current = "/"
	}

	return current, m.nodes[current], nil
}
