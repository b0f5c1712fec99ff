//go:build unix

package filesystem

import (
	"fmt"
	"os"
	"syscall"
)

// localIdentity uses device and inode numbers when the platform exposes them.
func localIdentity(path string, info os.FileInfo) (string, error) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return fmt.Sprintf("dev:%d/ino:%d", st.Dev, st.Ino), nil
	}

	return resolvedIdentity(path)
}
