package filesystem

import (
	"fmt"
	"os"
	"path"
	"sort"
)

// SFTPFileSystem implements FileSystem for SFTP connections.
type SFTPFileSystem struct {
	conn *SFTPConnection
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
// Closing the filesystem closes the connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{conn: conn}
}

// Abs resolves a remote path against the login directory.
func (fs *SFTPFileSystem) Abs(p string) (string, error) {
	if path.IsAbs(p) {
		return path.Clean(p), nil
	}

	resolved, err := fs.conn.Client().RealPath(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve remote path %s: %w", p, err)
	}

	return resolved, nil
}

// Close closes the SFTP session and SSH connection.
func (fs *SFTPFileSystem) Close() error {
	if fs.conn == nil {
		return nil
	}

	return fs.conn.Close()
}

// Identity asks the server for the canonical (symlink-free) path of a directory.
// SFTP exposes no inode numbers, so the resolved path is the identity.
func (fs *SFTPFileSystem) Identity(p string, _ os.FileInfo) (string, error) {
	resolved, err := fs.conn.Client().RealPath(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve remote path %s: %w", p, err)
	}

	return "sftp:" + resolved, nil
}

// Join joins remote path elements with forward slashes.
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// ReadDirNames lists a remote directory.
func (fs *SFTPFileSystem) ReadDirNames(dir string) ([]string, error) {
	infos, err := fs.conn.Client().ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	sort.Strings(names)

	return names, nil
}

// Stat returns remote file information, following symbolic links.
func (fs *SFTPFileSystem) Stat(p string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", p, err)
	}

	return info, nil
}
