package analyzer

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathFilter decides which entries the walker visits.
type PathFilter interface {
	// Excluded returns true if the entry at the given slash-separated relative path is skipped.
	Excluded(relativePath string) bool
}

// GlobFilter implements PathFilter using doublestar glob patterns.
type GlobFilter struct {
	normalizedPatterns []string
}

// NewGlobFilter creates a new GlobFilter. No patterns excludes nothing.
// Patterns are matched case-insensitively against the path relative to the root and
// against the base name, so "node_modules" and "**/*.tmp" both behave as expected.
func NewGlobFilter(patterns ...string) *GlobFilter {
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}

		normalized = append(normalized, strings.ToLower(p))
	}

	return &GlobFilter{normalizedPatterns: normalized}
}

// Excluded returns true if any pattern matches the path or its base name.
func (f *GlobFilter) Excluded(relativePath string) bool {
	if len(f.normalizedPatterns) == 0 {
		return false
	}

	normalizedPath := strings.ToLower(relativePath)
	base := normalizedPath
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}

	for _, pattern := range f.normalizedPatterns {
		// Invalid patterns never match; config validation rejects them up front
		if matched, err := doublestar.Match(pattern, normalizedPath); err == nil && matched {
			return true
		}

		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}

	return false
}
