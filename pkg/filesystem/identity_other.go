//go:build !unix

package filesystem

import "os"

func localIdentity(path string, _ os.FileInfo) (string, error) {
	return resolvedIdentity(path)
}
