package analyzer

import (
	"strings"
	"time"
)

// NoExtensionKey is the file-type key for files without an extension.
const NoExtensionKey = "no-extension"

// FileRecord is an immutable metadata snapshot for one regular file, taken when it was visited.
type FileRecord struct {
	Path      string // absolute path
	Name      string // base name
	Extension string // lowercase, without the dot; empty when none
	Size      int64
	ModTime   time.Time
	Depth     int // root children are depth 1
	Hidden    bool
}

// ExtensionKey returns the file-type key, substituting NoExtensionKey for an empty extension.
// A real extension spelled like the sentinel keeps its dot (".no-extension"); extensions never
// contain a dot, so the two keys cannot collide.
func (r FileRecord) ExtensionKey() string {
	switch r.Extension {
	case "":
		return NoExtensionKey
	case NoExtensionKey:
		return "." + NoExtensionKey
	default:
		return r.Extension
	}
}

// Stem returns the base name without its extension.
func (r FileRecord) Stem() string {
	stem, _ := SplitName(r.Name)

	return stem
}

// SplitName splits a base name into stem and lowercase extension.
// A leading dot does not start an extension (".bashrc" has none) and a trailing dot
// yields an empty extension ("file." -> "file", "").
func SplitName(name string) (string, string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, ""
	}

	return name[:idx], strings.ToLower(name[idx+1:])
}

// isDotHidden reports the platform-neutral hidden convention.
func isDotHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
