//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package shared_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-insight/internal/report"
	"github.com/joe/dir-insight/internal/tui/shared"
)

func TestRenderTwoColumnLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  string
		right string
		width int
	}{
		{"both columns", "LEFT_MARKER", "RIGHT_MARKER", 120},
		{"multiline", "Line 1\nLine 2", "Right 1\nRight 2\nRight 3", 100},
		{"empty left", "", "Right content", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			result := shared.RenderTwoColumnLayout(tt.left, tt.right, tt.width, 5)

			for _, line := range strings.Split(tt.left+"\n"+tt.right, "\n") {
				g.Expect(result).Should(ContainSubstring(line))
			}

			g.Expect(lipgloss.Width(result)).Should(Equal(tt.width))
		})
	}
}

func TestRenderTwoColumnLayout_LeftFirst(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	firstLine := strings.Split(shared.RenderTwoColumnLayout("LEFT", "RIGHT", 100, 1), "\n")[0]

	g.Expect(strings.Index(firstLine, "LEFT")).Should(BeNumerically("<", strings.Index(firstLine, "RIGHT")))
}

func TestRenderWidgetBox(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result := shared.RenderWidgetBox("File types", "go  12 files", 40)

	g.Expect(result).Should(ContainSubstring("File types"))
	g.Expect(result).Should(ContainSubstring("go  12 files"))
	g.Expect(result).Should(ContainSubstring("╭"))
	g.Expect(lipgloss.Width(result)).Should(BeNumerically("<=", 40))
}

func TestRenderWidgetBox_NarrowWidth(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(func() { _ = shared.RenderWidgetBox("T", "content", 2) }).ShouldNot(Panic())
}

func TestRenderSectionRows(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	section := report.Section{
		Title: "Overview",
		Rows: []report.Row{
			{Label: "Files", Value: "12"},
			{Label: "Max depth", Value: "4"},
		},
	}

	lines := strings.Split(stripANSI(shared.RenderSectionRows(section, nil)), "\n")

	g.Expect(lines).Should(Equal([]string{
		"Files      12",
		"Max depth  4",
	}))
}

func TestRenderSectionRows_Decorate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	section := report.Section{Rows: []report.Row{{Label: "go", Value: "3 files"}}}

	result := stripANSI(shared.RenderSectionRows(section, func(row report.Row) string {
		return "[" + row.Value + "]"
	}))

	g.Expect(result).Should(Equal("go  [3 files]"))
}
