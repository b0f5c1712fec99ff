package filesystem

import (
	"fmt"
)

// CreateFileSystem creates a FileSystem for the given path.
// Returns (filesystem, basePath, error).
// - filesystem: The FileSystem to use for operations; Close it when done
// - basePath: The actual path to use with the filesystem (stripped of URL prefix)
func CreateFileSystem(pathStr string) (FileSystem, string, error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", err
	}

	if !parsed.IsRemote {
		return NewRealFileSystem(), parsed.LocalPath, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	return NewSFTPFileSystem(conn), parsed.Path, nil
}
