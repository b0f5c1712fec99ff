package shared

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/dir-insight/internal/report"
)

// RenderTwoColumnLayout renders content in two columns with a 60-40 width split,
// aligned at the top.
func RenderTwoColumnLayout(leftContent, rightContent string, width, height int) string {
	leftWidth := int(float64(width) * 0.6) //nolint:mnd // 60% split
	rightWidth := width - leftWidth

	leftStyle := lipgloss.NewStyle().Width(leftWidth).Height(height)
	rightStyle := lipgloss.NewStyle().Width(rightWidth).Height(height)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(leftContent),
		rightStyle.Render(rightContent),
	)
}

// RenderWidgetBox renders content in a bordered box under a bold title.
// width includes the border and padding.
func RenderWidgetBox(title, content string, width int) string {
	const widthOverhead = 4 // borders (2) and padding (2)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor())
	boxStyle := BoxStyle().Width(max(width-widthOverhead, 1))

	return boxStyle.Render(titleStyle.Render(title) + "\n" + content)
}

// RenderSectionRows renders a report section's rows with labels aligned in one column.
// Each value may be decorated, e.g. with a share bar, by decorate; nil leaves values as they are.
func RenderSectionRows(section report.Section, decorate func(report.Row) string) string {
	labelWidth := 0
	for _, row := range section.Rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
	}

	lines := make([]string, 0, len(section.Rows))

	for _, row := range section.Rows {
		value := row.Value
		if decorate != nil {
			value = decorate(row)
		}

		label := fmt.Sprintf("%-*s", labelWidth, row.Label)
		lines = append(lines, LabelStyle().Render(label)+"  "+FileItemStyle().Render(value))
	}

	return strings.Join(lines, "\n")
}
