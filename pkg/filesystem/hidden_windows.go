//go:build windows

package filesystem

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// HasHiddenAttribute reports whether the file carries FILE_ATTRIBUTE_HIDDEN.
func (fs *RealFileSystem) HasHiddenAttribute(_ string, info os.FileInfo) bool {
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}

	return data.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
