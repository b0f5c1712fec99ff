// Package formatters renders sizes, counts and durations for humans.
package formatters

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes formats bytes into human-readable SI units (e.g., "1.5 MB").
// Negative values are clamped to zero.
func FormatBytes(bytes int64) string {
	return humanize.Bytes(uint64(max(bytes, 0))) //nolint:gosec // Clamped to non-negative
}

// FormatCount formats an integer with thousands separators (e.g., "12,345").
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatDays formats a fractional day count with one decimal.
func FormatDays(days float64) string {
	if days == 1 {
		return "1.0 day"
	}

	return fmt.Sprintf("%.1f days", days)
}

// FormatDuration formats duration into human-readable format (e.g., "2m 30s")
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}
