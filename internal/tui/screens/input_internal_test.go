//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package screens

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
)

func TestGetBaseName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(getBaseName("/home/user/docs/")).Should(Equal("docs/"))
	g.Expect(getBaseName("/home/user/file.txt")).Should(Equal("file.txt"))
	g.Expect(getBaseName("docs/")).Should(Equal("docs/"))
	g.Expect(getBaseName("plain")).Should(Equal("plain"))
}

func TestCompletionWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current, total int
		start, end     int
	}{
		{0, 20, 0, 8},
		{10, 20, 6, 14},
		{19, 20, 12, 20},
		{2, 5, 0, 5},
	}

	for _, tt := range tests {
		g := NewWithT(t)

		start, end := completionWindow(tt.current, maxCompletionsShown, tt.total)
		g.Expect([]int{start, end}).Should(Equal([]int{tt.start, tt.end}))
	}
}

func TestShouldIncludeEntry(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shouldIncludeEntry("src", "")).Should(BeTrue())
	g.Expect(shouldIncludeEntry("src", "sr")).Should(BeTrue())
	g.Expect(shouldIncludeEntry("src", "x")).Should(BeFalse())
	g.Expect(shouldIncludeEntry(".git", "")).Should(BeFalse())
	g.Expect(shouldIncludeEntry(".git", ".g")).Should(BeTrue())
}

func TestParseCompletionPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sep := string(filepath.Separator)

	dir, prefix := parseCompletionPath(filepath.Join("a", "b") + sep)
	g.Expect(dir).Should(Equal(filepath.Join("a", "b") + sep))
	g.Expect(prefix).Should(BeEmpty())

	dir, prefix = parseCompletionPath(filepath.Join("a", "bc"))
	g.Expect(dir).Should(Equal("a"))
	g.Expect(prefix).Should(Equal("bc"))
}

func TestGetPathCompletions_DirectoriesOnly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	g.Expect(os.Mkdir(filepath.Join(root, "alpha"), 0o755)).Should(Succeed())
	g.Expect(os.Mkdir(filepath.Join(root, "beta"), 0o755)).Should(Succeed())
	g.Expect(os.Mkdir(filepath.Join(root, ".cache"), 0o755)).Should(Succeed())
	g.Expect(os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o600)).Should(Succeed())

	sep := string(filepath.Separator)

	g.Expect(getPathCompletions(root + sep)).Should(Equal([]string{
		filepath.Join(root, "alpha") + sep,
		filepath.Join(root, "beta") + sep,
	}))
	g.Expect(getPathCompletions(filepath.Join(root, ".c"))).Should(Equal([]string{
		filepath.Join(root, ".cache") + sep,
	}))
	g.Expect(getPathCompletions("sftp://joe@host/")).Should(BeEmpty())
	g.Expect(getPathCompletions(filepath.Join(root, "missing") + sep)).Should(BeEmpty())
}
