package shared_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-insight/internal/analyzer"
	"github.com/joe/dir-insight/internal/tui/shared"
)

func entryErrors(n int) []analyzer.EntryError {
	entries := make([]analyzer.EntryError, n)
	for i := range entries {
		entries[i] = analyzer.EntryError{
			Path: fmt.Sprintf("/data/dir%d", i+1),
			Op:   "readdir",
			Err:  &fs.PathError{Op: "open", Path: fmt.Sprintf("/data/dir%d", i+1), Err: fs.ErrPermission},
		}
	}

	return entries
}

func TestRenderErrorList_Empty(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.RenderErrorList(shared.ErrorListConfig{Context: shared.ContextComplete})).Should(BeEmpty())
}

func TestRenderErrorList_ShowsPathOpAndSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result := shared.RenderErrorList(shared.ErrorListConfig{
		Errors: []analyzer.EntryError{
			{Path: "/data/secret.txt", Op: "stat", Err: errors.New("stat /data/secret.txt: permission denied")},
		},
		Context: shared.ContextComplete,
	})

	g.Expect(result).Should(ContainSubstring("/data/secret.txt"))
	g.Expect(result).Should(ContainSubstring("(stat)"))
	g.Expect(result).Should(ContainSubstring("permission denied"))
	g.Expect(result).Should(ContainSubstring("ls -ld /data/secret.txt"))
	g.Expect(result).ShouldNot(ContainSubstring("... and"))
}

func TestRenderErrorList_Limits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    int
		context  shared.ErrorDisplayContext
		shown    int
		overflow string
	}{
		{"complete at limit", shared.ErrorLimitComplete, shared.ContextComplete, shared.ErrorLimitComplete, ""},
		{"complete over limit", 12, shared.ContextComplete, shared.ErrorLimitComplete, "... and 2 more skipped entries"},
		{"other over limit by one", 6, shared.ContextOther, shared.ErrorLimitOther, "... and 1 more skipped entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			result := shared.RenderErrorList(shared.ErrorListConfig{
				Errors:  entryErrors(tt.count),
				Context: tt.context,
			})

			g.Expect(strings.Count(result, "(readdir)")).Should(Equal(tt.shown))

			if tt.overflow == "" {
				g.Expect(result).ShouldNot(ContainSubstring("... and"))
			} else {
				g.Expect(result).Should(ContainSubstring(tt.overflow))
			}
		})
	}
}

func TestRenderErrorList_TruncatesPaths(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	long := "/very/long/path/that/goes/on/and/on/until/it/ends/in/file.txt"

	result := shared.RenderErrorList(shared.ErrorListConfig{
		Errors:           []analyzer.EntryError{{Path: long, Op: "stat", Err: fs.ErrNotExist}},
		Context:          shared.ContextOther,
		MaxWidth:         30,
		TruncatePathFunc: shared.TruncatePath,
	})

	g.Expect(result).ShouldNot(ContainSubstring(long))
	g.Expect(result).Should(ContainSubstring("file.txt"))
}

func TestRenderFatalError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.RenderFatalError(nil, "/x")).Should(BeEmpty())

	rootErr := &analyzer.RootError{Path: "/missing", Err: &fs.PathError{Op: "stat", Path: "/missing", Err: fs.ErrNotExist}}
	result := shared.RenderFatalError(rootErr, "/missing")

	g.Expect(result).Should(ContainSubstring("/missing"))
	g.Expect(result).Should(ContainSubstring("Verify the path exists"))
}
