package filesystem

import (
	"fmt"
	"path/filepath"
)

// resolvedIdentity falls back to the fully resolved absolute path.
func resolvedIdentity(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return "path:" + abs, nil
}
