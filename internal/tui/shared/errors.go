package shared

import (
	"fmt"
	"strings"

	"github.com/joe/dir-insight/internal/analyzer"
	"github.com/joe/dir-insight/pkg/errors"
)

// Error display limits for different screen contexts
const (
	// ErrorLimitComplete is for the report after a finished scan
	ErrorLimitComplete = 10

	// ErrorLimitOther is for the report in cancelled/error states
	ErrorLimitOther = 5
)

// ErrorDisplayContext defines the context in which errors are being displayed
type ErrorDisplayContext int

const (
	// ContextComplete indicates skipped entries shown under a finished report
	ContextComplete ErrorDisplayContext = iota
	// ContextOther indicates errors shown after cancellation or failure
	ContextOther
)

// ErrorListConfig holds configuration for rendering error lists
type ErrorListConfig struct {
	// Errors is the list of skipped entries to display
	Errors []analyzer.EntryError

	// Context determines the display limit
	Context ErrorDisplayContext

	// MaxWidth is the maximum width for path and error message display
	MaxWidth int

	// TruncatePathFunc is the function to use for truncating paths
	TruncatePathFunc func(string, int) string
}

// RenderErrorList renders skipped entries with their enriched suggestions, up to the
// context's limit.
func RenderErrorList(config ErrorListConfig) string {
	if len(config.Errors) == 0 {
		return ""
	}

	var builder strings.Builder

	enricher := errors.NewEnricher()
	limit := getErrorLimit(config.Context)

	for i, entryErr := range config.Errors {
		if i >= limit {
			fmt.Fprintf(&builder, "... and %d more skipped entr%s\n", len(config.Errors)-limit, plural(len(config.Errors)-limit))

			break
		}

		enrichedErr := enricher.Enrich(entryErr.Err, entryErr.Path)

		displayPath := entryErr.Path
		if config.TruncatePathFunc != nil && config.MaxWidth > 0 {
			displayPath = config.TruncatePathFunc(entryErr.Path, config.MaxWidth)
		}

		fmt.Fprintf(&builder, "  %s %s %s\n",
			ErrorSymbol(),
			FileItemErrorStyle().Render(displayPath),
			DimStyle().Render("("+entryErr.Op+")"))

		errMsg := enrichedErr.Error()
		if config.MaxWidth > EllipsisLength && len(errMsg) > config.MaxWidth {
			errMsg = errMsg[:config.MaxWidth-EllipsisLength] + "..."
		}

		fmt.Fprintf(&builder, "    %s\n", errMsg)

		if suggestions := errors.FormatSuggestions(enrichedErr); suggestions != "" {
			fmt.Fprintf(&builder, "%s\n", indent(suggestions, "    "))
		}
	}

	return builder.String()
}

// RenderFatalError renders an error that stopped the analysis, with suggestions.
func RenderFatalError(err error, path string) string {
	if err == nil {
		return ""
	}

	enrichedErr := errors.NewEnricher().Enrich(err, path)

	var builder strings.Builder

	fmt.Fprintf(&builder, "%s %s\n", ErrorSymbol(), RenderError(enrichedErr.Error()))

	if suggestions := errors.FormatSuggestions(enrichedErr); suggestions != "" {
		fmt.Fprintf(&builder, "\n%s\n", suggestions)
	}

	return builder.String()
}

// getErrorLimit returns the error display limit for a given context
func getErrorLimit(context ErrorDisplayContext) int {
	if context == ContextComplete {
		return ErrorLimitComplete
	}

	return ErrorLimitOther
}

func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(strings.TrimRight(text, "\n"), "\n", "\n"+prefix)
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}

	return "ies"
}
