//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package analyzer_test

import (
	"testing"

	"github.com/joe/dir-insight/internal/analyzer"
)

func TestSplitName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{"report.pdf", "report", "pdf"},
		{"Photo.JPG", "Photo", "jpg"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"Makefile", "Makefile", ""},
		{".bashrc", ".bashrc", ""},
		{".config.json", ".config", "json"},
		{"trailing.", "trailing", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		stem, ext := analyzer.SplitName(tt.name)
		if stem != tt.wantStem || ext != tt.wantExt {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.name, stem, ext, tt.wantStem, tt.wantExt)
		}
	}
}

func TestFileRecordExtensionKey(t *testing.T) {
	t.Parallel()

	withExt := analyzer.FileRecord{Name: "a.txt", Extension: "txt"}
	if got := withExt.ExtensionKey(); got != "txt" {
		t.Errorf("ExtensionKey() = %q, want %q", got, "txt")
	}

	without := analyzer.FileRecord{Name: "Makefile"}
	if got := without.ExtensionKey(); got != analyzer.NoExtensionKey {
		t.Errorf("ExtensionKey() = %q, want %q", got, analyzer.NoExtensionKey)
	}

	lookalike := analyzer.FileRecord{Name: "foo.no-extension", Extension: analyzer.NoExtensionKey}
	if got := lookalike.ExtensionKey(); got != ".no-extension" {
		t.Errorf("ExtensionKey() = %q, want %q", got, ".no-extension")
	}
}
