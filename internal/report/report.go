// Package report turns an analysis result into titled sections of label/value rows, and
// renders them as plain text. The terminal UI styles the same sections.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/joe/dir-insight/internal/analyzer"
	"github.com/joe/dir-insight/pkg/formatters"
)

// Display limits for list sections.
const (
	MaxFileTypes  = 15
	MaxDuplicates = 10
	maxGroupFiles = 3
)

// Row is one label/value line of a section.
type Row struct {
	Label string
	Value string
}

// Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []Row
}

// Sections builds the report for result. skipped is the number of entries that could not be read.
func Sections(result analyzer.AnalysisResult, skipped int) []Section {
	sections := []Section{overview(result, skipped)}

	if len(result.FileTypes) > 0 {
		sections = append(sections, fileTypes(result.FileTypes))
	}

	if len(result.LargestFiles) > 0 {
		sections = append(sections, largestFiles(result.LargestFiles))
	}

	if len(result.DuplicatePatterns) > 0 {
		sections = append(sections, duplicates(result.DuplicatePatterns))
	}

	sections = append(sections, Section{
		Title: "Naming conventions",
		Rows: []Row{
			{"camelCase", formatters.FormatCount(int64(result.NamingStats.CamelCase))},
			{"snake_case", formatters.FormatCount(int64(result.NamingStats.SnakeCase))},
			{"kebab-case", formatters.FormatCount(int64(result.NamingStats.KebabCase))},
		},
	})

	return sections
}

// WriteText renders the sections as aligned plain text.
func WriteText(w io.Writer, root string, sections []Section) error {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Directory analysis: %s\n", root)

	for _, section := range sections {
		fmt.Fprintf(&builder, "\n%s\n%s\n", section.Title, strings.Repeat("-", len(section.Title)))

		width := 0
		for _, row := range section.Rows {
			width = max(width, len(row.Label))
		}

		for _, row := range section.Rows {
			fmt.Fprintf(&builder, "  %-*s  %s\n", width, row.Label, row.Value)
		}
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func overview(result analyzer.AnalysisResult, skipped int) Section {
	rows := []Row{
		{"Files", formatters.FormatCount(int64(result.TotalFiles))},
		{"Folders", formatters.FormatCount(int64(result.TotalFolders))},
		{"Total size", formatters.FormatBytes(result.TotalSize)},
		{"Max depth", fmt.Sprint(result.MaxDepth)},
		{"Hidden files", formatters.FormatCount(int64(result.HiddenFileCount))},
		{"Average age", formatters.FormatDays(result.AvgFileAgeDays)},
	}

	if result.OldestFile != nil {
		rows = append(rows, Row{"Oldest", describeEntry(*result.OldestFile)})
	}

	if result.NewestFile != nil {
		rows = append(rows, Row{"Newest", describeEntry(*result.NewestFile)})
	}

	if skipped > 0 {
		rows = append(rows, Row{"Unreadable", formatters.FormatCount(int64(skipped)) + " entries skipped"})
	}

	return Section{Title: "Overview", Rows: rows}
}

func describeEntry(entry analyzer.FileEntry) string {
	return fmt.Sprintf("%s (%s)", entry.Path, entry.Modified)
}

// TypeLabel renders a file-type key for display: ".go" for extensions, the key itself for
// the no-extension sentinel and for keys that already carry a dot.
func TypeLabel(key string) string {
	if key == analyzer.NoExtensionKey || strings.HasPrefix(key, ".") {
		return key
	}

	return "." + key
}

func fileTypes(types analyzer.FileTypes) Section {
	shown := types[:min(len(types), MaxFileTypes)]
	rows := make([]Row, 0, len(shown)+1)

	for _, entry := range shown {
		rows = append(rows, Row{
			Label: TypeLabel(entry.Extension),
			Value: fmt.Sprintf("%s files, %s (avg %s)",
				formatters.FormatCount(int64(entry.Count)),
				formatters.FormatBytes(entry.TotalSize),
				formatters.FormatBytes(entry.AverageSize)),
		})
	}

	if rest := len(types) - len(shown); rest > 0 {
		rows = append(rows, Row{"...", fmt.Sprintf("%d more types", rest)})
	}

	return Section{Title: "File types", Rows: rows}
}

func largestFiles(entries []analyzer.FileEntry) Section {
	rows := make([]Row, len(entries))
	for i, entry := range entries {
		rows[i] = Row{Label: formatters.FormatBytes(entry.Size), Value: entry.Path}
	}

	return Section{Title: "Largest files", Rows: rows}
}

func duplicates(groups []analyzer.DuplicateGroup) Section {
	shown := groups[:min(len(groups), MaxDuplicates)]
	rows := make([]Row, 0, len(shown)+1)

	for _, group := range shown {
		names := group.Files[:min(len(group.Files), maxGroupFiles)]

		value := fmt.Sprintf("%d files: %s", group.Count, strings.Join(names, ", "))
		if len(group.Files) > len(names) {
			value += ", ..."
		}

		rows = append(rows, Row{Label: group.Pattern, Value: value})
	}

	if rest := len(groups) - len(shown); rest > 0 {
		rows = append(rows, Row{"...", fmt.Sprintf("%d more patterns", rest)})
	}

	return Section{Title: "Probable duplicates", Rows: rows}
}
