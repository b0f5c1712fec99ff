package shared

import (
	"time"

	"github.com/joe/dir-insight/pkg/formatters"
)

// ============================================================================
// Formatting Functions
// These are used by multiple screens for consistent display
// ============================================================================

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MB")
func FormatBytes(bytes int64) string {
	return formatters.FormatBytes(bytes)
}

// FormatCount formats a count with thousands separators (e.g., "12,345")
func FormatCount(n int64) string {
	return formatters.FormatCount(n)
}

// FormatDuration formats duration into human-readable format (e.g., "2m 30s")
func FormatDuration(duration time.Duration) string {
	return formatters.FormatDuration(duration)
}

// TruncatePath shortens a path to maxWidth by replacing its middle with an ellipsis,
// keeping the end of the path where the file name is.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if maxWidth <= EllipsisLength || len(runes) <= maxWidth {
		return path
	}

	keep := maxWidth - EllipsisLength
	head := keep / 3 //nolint:mnd // A third of the room goes to the start of the path
	tail := keep - head

	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
