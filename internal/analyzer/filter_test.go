//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package analyzer_test

import (
	"testing"

	"github.com/joe/dir-insight/internal/analyzer"
)

func TestGlobFilterInvalidPattern(t *testing.T) {
	t.Parallel()

	// Invalid patterns must not panic and must not exclude anything
	filter := analyzer.NewGlobFilter("[invalid")
	if filter.Excluded("test.txt") {
		t.Error("Invalid pattern should not exclude files")
	}
}

func TestGlobFilterExcluded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		path     string
		excluded bool
	}{
		{"no patterns excludes nothing", nil, "any/file.txt", false},
		{"empty pattern ignored", []string{""}, "file.txt", false},
		{"extension at root", []string{"*.tmp"}, "scratch.tmp", true},
		{"extension in subdirectory matches base name", []string{"*.tmp"}, "a/b/scratch.tmp", true},
		{"extension no match", []string{"*.tmp"}, "a/b/notes.txt", false},
		{"directory name anywhere", []string{"node_modules"}, "web/node_modules", true},
		{"doublestar prefix", []string{"**/build/**"}, "app/build/out/main.o", true},
		{"anchored relative path", []string{"docs/*.md"}, "docs/readme.md", true},
		{"anchored relative path no match deeper", []string{"docs/*.md"}, "docs/old/readme.md", false},
		{"case insensitive pattern", []string{"*.LOG"}, "server.log", true},
		{"case insensitive path", []string{"*.log"}, "SERVER.LOG", true},
		{"any of several patterns", []string{"*.tmp", ".git"}, ".git", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter := analyzer.NewGlobFilter(tt.patterns...)
			if got := filter.Excluded(tt.path); got != tt.excluded {
				t.Errorf("Excluded(%q) with %v = %v, want %v", tt.path, tt.patterns, got, tt.excluded)
			}
		})
	}
}
