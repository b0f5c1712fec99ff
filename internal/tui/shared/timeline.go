package shared

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Phase keys understood by RenderTimeline.
const (
	PhaseInput  = "input"
	PhaseScan   = "scan"
	PhaseReport = "report"
)

// unicodeDisabled switches the symbols to ASCII on terminals that cannot draw them.
//
//nolint:gochecknoglobals // Read once from the environment
var unicodeDisabled = os.Getenv("TERM") == "dumb"

// ActiveSymbol returns a circled dot symbol with ASCII fallback
func ActiveSymbol() string {
	if unicodeDisabled {
		return "[*]"
	}

	return "◉"
}

// CancelledSymbol returns a cancelled/prohibited symbol with ASCII fallback
func CancelledSymbol() string {
	if unicodeDisabled {
		return "[!]"
	}

	return "⊘"
}

// ErrorSymbol returns a cross symbol with ASCII fallback
func ErrorSymbol() string {
	if unicodeDisabled {
		return "[x]"
	}

	return "✗"
}

// PendingSymbol returns an empty circle symbol with ASCII fallback
func PendingSymbol() string {
	if unicodeDisabled {
		return "[ ]"
	}

	return "○"
}

// SuccessSymbol returns a check mark symbol with ASCII fallback
func SuccessSymbol() string {
	if unicodeDisabled {
		return "[v]"
	}

	return "✓"
}

// RenderTimeline renders the phase progression for the header: Input, Scan, Report.
// Phases before the current one show as completed, later ones as pending.
// An error phase (e.g. "scan_error") shows the error symbol there and skips the rest.
func RenderTimeline(currentPhase string) string {
	phase := strings.ToLower(strings.TrimSpace(currentPhase))

	isError := strings.HasSuffix(phase, "_error")
	if isError {
		phase = strings.TrimSuffix(phase, "_error")
	}

	type phaseDefinition struct {
		name string
		key  string
	}

	phases := []phaseDefinition{
		{"Input", PhaseInput},
		{"Scan", PhaseScan},
		{"Report", PhaseReport},
	}

	// Unknown phases fall back to input
	currentIdx := 0

	for i, phaseInfo := range phases {
		if phaseInfo.key == phase {
			currentIdx = i

			break
		}
	}

	parts := make([]string, 0, len(phases))

	for phaseIdx, phaseInfo := range phases {
		var symbol string

		var style lipgloss.Style

		switch {
		case isError && phaseIdx == currentIdx:
			symbol = ErrorSymbol()
			style = lipgloss.NewStyle().Foreground(ErrorColor())
		case isError && phaseIdx > currentIdx:
			symbol = CancelledSymbol()
			style = DimStyle()
		case phaseIdx < currentIdx:
			symbol = SuccessSymbol()
			style = lipgloss.NewStyle().Foreground(SuccessColor())
		case phaseIdx == currentIdx && currentIdx == len(phases)-1:
			// The last phase is a resting state, not work in progress
			symbol = SuccessSymbol()
			style = lipgloss.NewStyle().Foreground(SuccessColor())
		case phaseIdx == currentIdx:
			symbol = ActiveSymbol()
			style = lipgloss.NewStyle().Foreground(PrimaryColor())
		default:
			symbol = PendingSymbol()
			style = DimStyle()
		}

		parts = append(parts, style.Render(symbol+" "+phaseInfo.name))
	}

	return strings.Join(parts, DimStyle().Render(" ── "))
}
